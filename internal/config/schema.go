package config

type fileSchema struct {
	Server   serverSchema   `toml:"server"`
	Log      logSchema      `toml:"log"`
	Breaker  breakerSchema  `toml:"breaker"`
	Analysis analysisSchema `toml:"analysis"`
}

type serverSchema struct {
	BaseURL string `toml:"base_url"`
}

type logSchema struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type breakerSchema struct {
	Enabled      bool    `toml:"enabled"`
	MinRequests  uint32  `toml:"min_requests"`
	FailureRatio float64 `toml:"failure_ratio"`
	OpenTimeout  string  `toml:"open_timeout"`
}

type analysisSchema struct {
	DiscardStale bool `toml:"discard_stale"`
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Server: serverSchema{BaseURL: c.Server.BaseURL},
		Log:    logSchema{Path: c.Log.Path, Level: c.Log.Level},
		Breaker: breakerSchema{
			Enabled:      c.Breaker.Enabled,
			MinRequests:  c.Breaker.MinRequests,
			FailureRatio: c.Breaker.FailureRatio,
			OpenTimeout:  c.Breaker.OpenTimeout.String(),
		},
		Analysis: analysisSchema{DiscardStale: c.Analysis.DiscardStale},
	}
}
