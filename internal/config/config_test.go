package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, filepath.Join(home, ".paperlens", "paperlens.log"), cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Breaker.Enabled)
	assert.Equal(t, uint32(5), cfg.Breaker.MinRequests)
	assert.InDelta(t, 0.6, cfg.Breaker.FailureRatio, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Breaker.OpenTimeout)
	assert.False(t, cfg.Analysis.DiscardStale)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[server]
base_url = "http://papers.internal:9000/"

[log]
path = "~/logs/pl.log"
level = "debug"

[breaker]
enabled = false
open_timeout = "5s"

[analysis]
discard_stale = true
`)

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, "http://papers.internal:9000", cfg.Server.BaseURL)
	assert.Equal(t, filepath.Join(home, "logs", "pl.log"), cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Breaker.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Breaker.OpenTimeout)
	assert.True(t, cfg.Analysis.DiscardStale)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[server]
base_url = "http://from-file:8000"
`)
	t.Setenv("PAPERLENS_SERVER_BASE_URL", "http://from-env:8001")
	t.Setenv("PAPERLENS_ANALYSIS_DISCARD_STALE", "true")

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8001", cfg.Server.BaseURL)
	assert.True(t, cfg.Analysis.DiscardStale)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{name: "base url", config: "[server]\nbase_url = \"not a url\"\n"},
		{name: "log level", config: "[log]\nlevel = \"verbose\"\n"},
		{name: "failure ratio", config: "[breaker]\nfailure_ratio = 1.5\n"},
		{name: "min requests", config: "[breaker]\nmin_requests = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.config)

			_, err := Load(viper.New(), home)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[server\nbase_url = ")

	_, err := Load(viper.New(), home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestTOMLRoundTripsThroughLoad(t *testing.T) {
	home := t.TempDir()
	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)
	cfg.Breaker.OpenTimeout = 90 * time.Second

	data, err := cfg.TOML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "server")
	assert.Contains(t, string(data), "1m30s")

	writeConfig(t, home, string(data))
	reloaded, err := Load(viper.New(), home)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func writeConfig(t *testing.T, home, contents string) {
	t.Helper()

	dir := Dir(home)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644))
}
