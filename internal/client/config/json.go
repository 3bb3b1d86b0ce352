package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/onemployment/client/internal/flagx"
	"github.com/onemployment/client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations can
// be specified as strings like "300ms" or as integer nanoseconds; after
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DebounceDelay  *timex.Duration `json:"debounce_delay"`
	SessionDBPath  *string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags via flagx.JsonConfigFlags; when
// neither is given, nothing is loaded. Fields absent from the file keep
// their current values. Read or unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DebounceDelay != nil {
		cfg.DebounceDelay = time.Duration(jc.DebounceDelay.Duration)
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
}
