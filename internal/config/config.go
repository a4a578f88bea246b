package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".paperlens"
	envPrefix  = "PAPERLENS"

	serverBaseURLKey     = "server.base_url"
	logPathKey           = "log.path"
	logLevelKey          = "log.level"
	breakerEnabledKey    = "breaker.enabled"
	breakerMinReqKey     = "breaker.min_requests"
	breakerRatioKey      = "breaker.failure_ratio"
	breakerOpenKey       = "breaker.open_timeout"
	analysisDiscardKey   = "analysis.discard_stale"
	defaultServerBaseURL = "http://localhost:8000"
	defaultLogFile       = "paperlens.log"
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Server   Server   `mapstructure:"server"`
	Log      Log      `mapstructure:"log"`
	Breaker  Breaker  `mapstructure:"breaker"`
	Analysis Analysis `mapstructure:"analysis"`
}

type Server struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type Log struct {
	Path  string `mapstructure:"path" validate:"required"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Breaker tunes the circuit breaker in front of the remote service. It never
// retries; it only fails fast while the service keeps failing.
type Breaker struct {
	Enabled      bool          `mapstructure:"enabled"`
	MinRequests  uint32        `mapstructure:"min_requests" validate:"gte=1"`
	FailureRatio float64       `mapstructure:"failure_ratio" validate:"gt=0,lte=1"`
	OpenTimeout  time.Duration `mapstructure:"open_timeout" validate:"gt=0"`
}

type Analysis struct {
	DiscardStale bool `mapstructure:"discard_stale"`
}

// Dir is the directory holding config.toml and the default log file.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, configDir)
}

// Load reads config.toml from the PaperLens directory under homeDir, applies
// PAPERLENS_* environment overrides and validates the result. A missing file
// yields the defaults.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(Dir(homeDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, homeDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")
	cfg.Log.Path = expandHome(cfg.Log.Path, homeDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// TOML renders the effective configuration in the config file format.
func (c Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(toSchema(c))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(serverBaseURLKey, defaultServerBaseURL)
	v.SetDefault(logPathKey, filepath.Join(Dir(homeDir), defaultLogFile))
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(breakerEnabledKey, true)
	v.SetDefault(breakerMinReqKey, 5)
	v.SetDefault(breakerRatioKey, 0.6)
	v.SetDefault(breakerOpenKey, "30s")
	v.SetDefault(analysisDiscardKey, false)
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(homeDir, rest)
	}
	return path
}
