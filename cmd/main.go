package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katiamach/weather-forecast-web/internal/api"
	"github.com/katiamach/weather-forecast-web/internal/config"
	"github.com/katiamach/weather-forecast-web/internal/forecast"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/owm"
	"github.com/katiamach/weather-forecast-web/internal/repository"
	"github.com/katiamach/weather-forecast-web/internal/scratch"
	"github.com/katiamach/weather-forecast-web/internal/series"
	"github.com/katiamach/weather-forecast-web/internal/service"
	"github.com/katiamach/weather-forecast-web/internal/transport/rest/handler"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal(fmt.Errorf("failed to load .env file: %w", err))
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = config.DefaultFile
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(fmt.Errorf("invalid log level: %w", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo service.Repository
	if cfg.DB.Enabled() {
		r, err := repository.New(ctx, cfg.DB)
		if err != nil {
			logger.Fatal(fmt.Errorf("failed to create repository: %w", err))
		}
		defer r.Close()
		repo = r
	} else {
		logger.Info("Prediction history is disabled, no database configured")
	}

	weatherService := service.New(
		owm.New(cfg.Weather),
		series.Builder{Limit: cfg.Forecast.HourlyLimit, MinSamples: cfg.Forecast.MinSamples},
		scratch.New(cfg.Forecast.ScratchPath),
		forecast.NewEngine(forecast.AutoARIMA{}, cfg.Forecast.Horizon),
		repo,
	)

	err = api.RunAPI(ctx, cfg, handler.NewWeatherServer(weatherService))
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather forecast api: %v", err))
	}
}
