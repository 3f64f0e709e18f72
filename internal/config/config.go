// Package config loads the service configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when CONFIG_FILE is not set.
const DefaultFile = "config.yaml"

// Config is the service configuration.
type Config struct {
	Port          string `yaml:"port" envconfig:"PORT"`
	AllowedOrigin string `yaml:"allowed_origin" envconfig:"ORIGIN"`
	LogLevel      string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	Weather  WeatherConfig  `yaml:"weather"`
	Forecast ForecastConfig `yaml:"forecast"`
	DB       DBConfig       `yaml:"db"`
}

// WeatherConfig configures the OpenWeatherMap client.
type WeatherConfig struct {
	APIKey    string        `yaml:"api_key" envconfig:"OPENWEATHER_API_KEY"`
	BaseURL   string        `yaml:"base_url" envconfig:"OPENWEATHER_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"OPENWEATHER_TIMEOUT"`
	RateLimit float64       `yaml:"rate_limit" envconfig:"OPENWEATHER_RATE_LIMIT"`
	RateBurst int           `yaml:"rate_burst" envconfig:"OPENWEATHER_RATE_BURST"`
}

// ForecastConfig configures the prediction pipeline.
type ForecastConfig struct {
	HourlyLimit int    `yaml:"hourly_limit" envconfig:"FORECAST_HOURLY_LIMIT"`
	MinSamples  int    `yaml:"min_samples" envconfig:"FORECAST_MIN_SAMPLES"`
	Horizon     int    `yaml:"horizon" envconfig:"FORECAST_HORIZON"`
	ScratchPath string `yaml:"scratch_path" envconfig:"FORECAST_SCRATCH_PATH"`
}

// DBConfig configures the optional prediction history store.
type DBConfig struct {
	ConnString string `yaml:"conn_string" envconfig:"DB_CONN_STRING"`
	Name       string `yaml:"name" envconfig:"DB_NAME"`
}

// Enabled reports whether prediction history is configured.
func (c DBConfig) Enabled() bool {
	return c.ConnString != "" && c.Name != ""
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:          "8080",
		AllowedOrigin: "*",
		LogLevel:      "info",
		Weather: WeatherConfig{
			BaseURL:   "https://api.openweathermap.org/data/2.5",
			Timeout:   10 * time.Second,
			RateLimit: 1,
			RateBurst: 5,
		},
		Forecast: ForecastConfig{
			HourlyLimit: 48,
			MinSamples:  10,
			Horizon:     5,
			ScratchPath: "static/csv/weather_data.csv",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (a missing
// file is not an error), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c Config) Validate() error {
	if c.Weather.APIKey == "" {
		return errors.New("weather.api_key is required (OPENWEATHER_API_KEY)")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Weather.Timeout <= 0 {
		return errors.New("weather.timeout should be positive")
	}
	if c.Weather.RateLimit <= 0 || c.Weather.RateBurst <= 0 {
		return errors.New("weather.rate_limit and weather.rate_burst should be positive")
	}
	if c.Forecast.MinSamples < 1 || c.Forecast.HourlyLimit < c.Forecast.MinSamples {
		return errors.New("forecast.hourly_limit should be at least forecast.min_samples")
	}
	if c.Forecast.Horizon < 1 {
		return errors.New("forecast.horizon should be positive")
	}
	if c.Forecast.ScratchPath == "" {
		return errors.New("forecast.scratch_path is required")
	}

	return nil
}
