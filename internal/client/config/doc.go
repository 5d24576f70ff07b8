// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   admin API base URL
//	-t int      request timeout (seconds)
//	-d string   token database path
//	-s string   HTTP shell listen address
//	-serve      run the HTTP shell instead of the REPL
//
// # JSON schema
//
// Durations may be strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.gastro-analytics.uz/api/v1",
//	  "request_timeout": "10s",
//	  "token_db_path": "adminconsole.db",
//	  "shell_addr": "127.0.0.1:8088",
//	  "serve": false
//	}
//
// Invalid input panics at startup.
package config
