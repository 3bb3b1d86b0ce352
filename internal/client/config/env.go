package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// envConfig mirrors Config for environment parsing. Unset variables leave
// the corresponding Config fields untouched.
type envConfig struct {
	APIBaseURL     string        `env:"ONEMPLOYMENT_API_URL"`
	RequestTimeout time.Duration `env:"ONEMPLOYMENT_REQUEST_TIMEOUT"`
	DebounceDelay  time.Duration `env:"ONEMPLOYMENT_DEBOUNCE_DELAY"`
	SessionDBPath  string        `env:"ONEMPLOYMENT_SESSION_DB"`
}

// parseEnv overlays Config with values from ONEMPLOYMENT_* environment
// variables. Parse errors panic, consistent with the JSON layer.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DebounceDelay != 0 {
		cfg.DebounceDelay = ec.DebounceDelay
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
}
