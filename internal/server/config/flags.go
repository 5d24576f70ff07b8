package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
)

// parseFlags overlays config with command-line flags:
//
//	-a string          HTTP bind address (e.g., ":8000")
//	-k string          JWT HMAC secret key
//	-otp-ttl int       one-time code validity, seconds
//	-access-ttl int    access token validity, seconds
//	-refresh-ttl int   refresh token validity, seconds
//
// Only these flags are picked out of args; everything else is ignored.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-otp-ttl", "-access-ttl", "-refresh-ttl"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "secret key")

	otpTTL := fs.Int("otp-ttl", int(config.OTPValidityDuration.Seconds()), "one-time code validity (in seconds)")
	accessTTL := fs.Int("access-ttl", int(config.AccessTokenValidityDuration.Seconds()), "access token validity (in seconds)")
	refreshTTL := fs.Int("refresh-ttl", int(config.RefreshTokenValidityDuration.Seconds()), "refresh token validity (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.OTPValidityDuration = time.Duration(*otpTTL) * time.Second
	config.AccessTokenValidityDuration = time.Duration(*accessTTL) * time.Second
	config.RefreshTokenValidityDuration = time.Duration(*refreshTTL) * time.Second
}
