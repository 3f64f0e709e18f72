package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tj/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "key", cfg.Weather.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 48, cfg.Forecast.HourlyLimit)
	assert.Equal(t, 10, cfg.Forecast.MinSamples)
	assert.Equal(t, 5, cfg.Forecast.Horizon)
	assert.False(t, cfg.DB.Enabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9000"
weather:
  api_key: from-file
  timeout: 3s
forecast:
  horizon: 5
  scratch_path: /tmp/scratch.csv
db:
  conn_string: mongodb://localhost:27017
  name: weather
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-file", cfg.Weather.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, "/tmp/scratch.csv", cfg.Forecast.ScratchPath)
	assert.Equal(t, 48, cfg.Forecast.HourlyLimit)
	assert.True(t, cfg.DB.Enabled())
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api_key is required")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "ok", modify: func(c *Config) {}},
		{name: "no timeout", modify: func(c *Config) { c.Weather.Timeout = 0 }, errMsg: "timeout"},
		{name: "no burst", modify: func(c *Config) { c.Weather.RateBurst = 0 }, errMsg: "rate_burst"},
		{name: "limit below min samples", modify: func(c *Config) { c.Forecast.HourlyLimit = 5 }, errMsg: "hourly_limit"},
		{name: "no horizon", modify: func(c *Config) { c.Forecast.Horizon = 0 }, errMsg: "horizon"},
		{name: "no scratch path", modify: func(c *Config) { c.Forecast.ScratchPath = "" }, errMsg: "scratch_path"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Weather.APIKey = "key"
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
