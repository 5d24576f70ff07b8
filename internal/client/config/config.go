package config

import "time"

const (
	DefaultAPIBaseURL     = "https://api.gastro-analytics.uz/api/v1"
	DefaultRequestTimeout = 10 * time.Second
	DefaultTokenDBPath    = "adminconsole.db"
	DefaultShellAddr      = "127.0.0.1:8088"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: base URL of the admin API, without a trailing slash.
//   - RequestTimeout: per-request timeout for gateway calls.
//   - TokenDBPath: sqlite file holding the current token pair; empty keeps
//     tokens in memory only.
//   - ShellAddr: listen address of the HTTP shell.
//   - Serve: run the HTTP shell instead of the interactive REPL.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenDBPath    string
	ShellAddr      string
	Serve          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = DefaultRequestTimeout
	c.TokenDBPath = DefaultTokenDBPath
	c.ShellAddr = DefaultShellAddr
	c.Serve = false
}

// LoadConfig builds a Config from defaults, then the optional JSON file, then
// command-line flags. Later sources take precedence.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
