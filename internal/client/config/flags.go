package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
)

var ownFlags = flagx.Set{
	Valued:   []string{"-a", "-t", "-d", "-s"},
	Switches: []string{"-serve"},
}

// parseFlags overlays cfg with command-line flags:
//
//	-a string   admin API base URL
//	-t int      request timeout (in seconds)
//	-d string   token database path ("" keeps tokens in memory)
//	-s string   HTTP shell listen address
//	-serve      run the HTTP shell
//
// Unknown flags are skipped so the JSON loader's -c/-config can share args.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "admin API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "token database path")
	fs.StringVar(&cfg.ShellAddr, "s", cfg.ShellAddr, "HTTP shell listen address")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "run the HTTP shell instead of the REPL")

	if err := fs.Parse(ownFlags.Filter(args)); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
