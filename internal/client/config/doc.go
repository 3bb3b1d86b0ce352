// Package config loads runtime configuration for the Onemployment CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), ONEMPLOYMENT_* prefixed.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "300ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "debounce_delay": "300ms",
//	  "session_db_path": "session.db"
//	}
package config
