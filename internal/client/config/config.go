package config

import "time"

// Config holds runtime settings for the Onemployment CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend REST API.
//   - RequestTimeout: per-request deadline for the HTTP client.
//   - DebounceDelay: quiet period for the availability checkers.
//   - SessionDBPath: sqlite file holding the persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DebounceDelay  time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.DebounceDelay = 300 * time.Millisecond
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
