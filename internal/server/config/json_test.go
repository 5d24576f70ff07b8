package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr":                   "www.example:9000",
			"secret_key":                      "my_secret_key",
			"otp_validity_duration":           "2m",
			"access_token_validity_duration":  "1m",
			"refresh_token_validity_duration": "3m",
			"admins": []map[string]any{
				{"username": "root", "password": "rootpass", "telegram_id": "42"},
			},
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.OTPValidityDuration)
		assert.Equal(t, time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 3*time.Minute, cfg.RefreshTokenValidityDuration)
		assert.Equal(t, []SeedAdmin{{Username: "root", Password: "rootpass", TelegramID: "42"}}, cfg.Admins)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"endpoint_addr": ":1"})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", path})

		assert.Equal(t, ":1", cfg.EndpointAddr)
		assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Len(t, cfg.Admins, 2)
	})

	t.Run("flags win over json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"endpoint_addr": ":1", "secret_key": "json"})

		cfg := LoadConfig([]string{"-c", path, "-k", "flag"})

		assert.Equal(t, ":1", cfg.EndpointAddr)
		assert.Equal(t, "flag", cfg.SecretKey)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}
