// Package service implements the weather lookup and prediction use cases.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sartorproj/goarima/timeseries"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/katiamach/weather-forecast-web/internal/forecast"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/metrics"
	"github.com/katiamach/weather-forecast-web/internal/model"
	"github.com/katiamach/weather-forecast-web/internal/owm"
	"github.com/katiamach/weather-forecast-web/internal/presenter"
	"github.com/katiamach/weather-forecast-web/internal/series"
)

var (
	ErrEmptyInput            = errors.New("please enter a city name")
	ErrMissingCoordinates    = errors.New("coordinates not found for city")
	ErrHourlyDataUnavailable = errors.New("hourly forecast not available from APIs")
	ErrHistoryDisabled       = errors.New("prediction history is not configured")
)

//go:generate mockgen -source=service.go -destination=mock/mock.go WeatherClient,Repository

// WeatherClient provides the weather provider calls.
type WeatherClient interface {
	Current(ctx context.Context, city string) (model.Observation, error)
	OneCallHourly(ctx context.Context, coord model.Coordinates) (*owm.HourlyPayload, error)
	ForecastHourly(ctx context.Context, coord model.Coordinates, limit int) (*owm.HourlyPayload, error)
}

// Repository provides necessary repo methods.
type Repository interface {
	InsertPrediction(ctx context.Context, rec *model.PredictionRecord) error
	ListPredictions(ctx context.Context, key string, limit int) ([]*model.PredictionRecord, error)
}

// Scratch is the on-disk table the window passes through before fitting.
type Scratch interface {
	Roundtrip(samples []model.Sample) (temps, hums *timeseries.Series, err error)
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	client  WeatherClient
	builder series.Builder
	scratch Scratch
	engine  *forecast.Engine
	repo    Repository
	now     func() time.Time
}

// New creates new WeatherService. repo may be nil, which disables history.
func New(client WeatherClient, builder series.Builder, scratch Scratch, engine *forecast.Engine, repo Repository) *WeatherService {
	return &WeatherService{
		client:  client,
		builder: builder,
		scratch: scratch,
		engine:  engine,
		repo:    repo,
		now:     time.Now,
	}
}

// Lookup returns the current weather for a city.
func (ws *WeatherService) Lookup(ctx context.Context, city string) (model.Observation, error) {
	city, err := normalizeCity(city)
	if err != nil {
		return model.Observation{}, err
	}

	obs, err := ws.client.Current(ctx, city)
	if err != nil {
		return model.Observation{}, fmt.Errorf("failed to get current weather: %w", err)
	}

	return obs, nil
}

// Predict fetches the current weather and the recent hourly window of a city,
// fits both temperature and humidity and forecasts the next hours.
func (ws *WeatherService) Predict(ctx context.Context, city string) (model.Observation, *model.Prediction, error) {
	obs, err := ws.Lookup(ctx, city)
	if err != nil {
		return model.Observation{}, nil, err
	}
	if obs.Coord == nil {
		return model.Observation{}, nil, ErrMissingCoordinates
	}

	window, err := ws.hourlyWindow(ctx, *obs.Coord)
	if err != nil {
		metrics.Predictions.WithLabelValues("none", "no_data").Inc()
		return model.Observation{}, nil, err
	}
	source := string(window.Source)

	temps, hums, err := ws.scratch.Roundtrip(window.Samples)
	if err != nil {
		metrics.Predictions.WithLabelValues(source, "error").Inc()
		return model.Observation{}, nil, err
	}
	if temps.Len() < ws.builder.MinSamples {
		metrics.Predictions.WithLabelValues(source, "no_data").Inc()
		return model.Observation{}, nil, fmt.Errorf("%d rows left in scratch table: %w", temps.Len(), series.ErrInsufficientData)
	}

	tempRes, err := ws.engine.Forecast(ctx, "temp", temps)
	if err != nil {
		metrics.Predictions.WithLabelValues(source, "error").Inc()
		return model.Observation{}, nil, err
	}
	humRes, err := ws.engine.Forecast(ctx, "humidity", hums)
	if err != nil {
		metrics.Predictions.WithLabelValues(source, "error").Inc()
		return model.Observation{}, nil, err
	}

	labels := presenter.Labels(ws.now(), ws.engine.Horizon())
	pred := &model.Prediction{
		Source:       source,
		Step:         window.Step,
		Samples:      temps.Len(),
		TempOrder:    tempRes.Order,
		HumOrder:     humRes.Order,
		Temperatures: presenter.Points(labels, tempRes.Values),
		Humidities:   presenter.Points(labels, humRes.Values),
	}

	metrics.Predictions.WithLabelValues(source, "ok").Inc()
	logger.WithFields(logger.Fields{
		"city":      obs.City,
		"source":    source,
		"samples":   pred.Samples,
		"tempOrder": pred.TempOrder,
		"humOrder":  pred.HumOrder,
	}).Info("prediction completed")

	ws.record(ctx, obs, pred)

	return obs, pred, nil
}

// hourlyWindow builds the window from the one-call endpoint and falls back to
// the 3-hourly forecast when that fails or holds too few samples.
func (ws *WeatherService) hourlyWindow(ctx context.Context, coord model.Coordinates) (series.Window, error) {
	primary, err := ws.client.OneCallHourly(ctx, coord)
	if err == nil && primary.Len() > 0 {
		w, err := ws.builder.Build(primary)
		if err == nil {
			return w, nil
		}
		logger.WithFields(logger.Fields{"error": err}).Warn("one-call hourly data unusable, falling back to forecast")
	} else {
		primary = nil
		logger.WithFields(logger.Fields{"error": err}).Info("one-call hourly data unavailable, falling back to forecast")
	}

	fallback, err := ws.client.ForecastHourly(ctx, coord, ws.builder.Limit)
	if err != nil {
		if primary != nil {
			return series.Window{}, fmt.Errorf("forecast fallback failed: %v: %w", err, series.ErrInsufficientData)
		}
		return series.Window{}, fmt.Errorf("%w: %w", ErrHourlyDataUnavailable, err)
	}
	if primary == nil && fallback.Len() == 0 {
		return series.Window{}, ErrHourlyDataUnavailable
	}

	return ws.builder.Build(fallback)
}

// History returns the latest recorded predictions for a city. Records are
// keyed by the provider's city name, so the input is resolved through a
// current weather lookup first.
func (ws *WeatherService) History(ctx context.Context, city string, limit int) ([]*model.PredictionRecord, error) {
	if ws.repo == nil {
		return nil, ErrHistoryDisabled
	}

	obs, err := ws.Lookup(ctx, city)
	if err != nil {
		return nil, err
	}

	records, err := ws.repo.ListPredictions(ctx, cityKey(obs.City), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	return records, nil
}

func (ws *WeatherService) record(ctx context.Context, obs model.Observation, pred *model.Prediction) {
	if ws.repo == nil {
		return
	}

	rec := &model.PredictionRecord{
		ID:           uuid.NewString(),
		Key:          cityKey(obs.City),
		City:         obs.City,
		Country:      obs.Country,
		Coord:        *obs.Coord,
		Source:       pred.Source,
		Samples:      pred.Samples,
		TempOrder:    pred.TempOrder,
		HumOrder:     pred.HumOrder,
		Temperatures: pred.Temperatures,
		Humidities:   pred.Humidities,
		CreatedAt:    ws.now().UTC(),
	}

	if err := ws.repo.InsertPrediction(ctx, rec); err != nil {
		logger.Error(fmt.Errorf("failed to record prediction: %w", err))
	}
}

func normalizeCity(city string) (string, error) {
	city = strings.TrimSpace(norm.NFC.String(city))
	if city == "" {
		return "", ErrEmptyInput
	}
	return city, nil
}

func cityKey(city string) string {
	return cases.Fold().String(city)
}
