// Package config handles configuration for the dev server, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// SeedAdmin is an account created at startup. Password is hashed before the
// server starts accepting requests.
type SeedAdmin struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	TelegramID string `json:"telegram_id"`
}

// Config holds runtime settings for the dev server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). An empty key is
//     replaced by a random one at startup.
//   - OTPValidityDuration: lifetime of a one-time code and its temp token.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - Admins: accounts seeded into the in-memory store.
type Config struct {
	EndpointAddr                 string
	SecretKey                    string
	OTPValidityDuration          time.Duration
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	Admins                       []SeedAdmin
}

// LoadDefaults populates Config with development defaults.
// NOTE: the seeded passwords are for local use only.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SecretKey = ""
	c.OTPValidityDuration = 5 * time.Minute
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.Admins = []SeedAdmin{
		{Username: "admin", Password: "admin123", FirstName: "Bosh", LastName: "Admin", TelegramID: "100200300"},
		{Username: "viewer", Password: "viewer123", FirstName: "Demo", LastName: "Viewer"},
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
