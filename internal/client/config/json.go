package config

import (
	"os"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
	"github.com/dmitrijs2005/adminconsole/internal/timex"
	"github.com/goccy/go-json"
)

// JsonConfig is the file form of Config. Absent fields keep earlier values.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	TokenDBPath    *string         `json:"token_db_path"`
	ShellAddr      *string         `json:"shell_addr"`
	Serve          *bool           `json:"serve"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenDBPath != nil {
		cfg.TokenDBPath = *jc.TokenDBPath
	}
	if jc.ShellAddr != nil {
		cfg.ShellAddr = *jc.ShellAddr
	}
	if jc.Serve != nil {
		cfg.Serve = *jc.Serve
	}
}
