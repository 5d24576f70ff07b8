package config

import (
	"os"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
	"github.com/dmitrijs2005/adminconsole/internal/timex"
	"github.com/goccy/go-json"
)

// JsonConfig is the file form of Config. Absent fields keep earlier values;
// a present "admins" list replaces the seeded accounts.
type JsonConfig struct {
	EndpointAddr                 *string         `json:"endpoint_addr"`
	SecretKey                    *string         `json:"secret_key"`
	OTPValidityDuration          *timex.Duration `json:"otp_validity_duration"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	Admins                       []SeedAdmin     `json:"admins"`
}

// parseJson loads the file named by -c/-config into config. It panics when
// the file cannot be read or decoded.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.OTPValidityDuration != nil {
		config.OTPValidityDuration = c.OTPValidityDuration.Duration
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.Admins != nil {
		config.Admins = c.Admins
	}
}
