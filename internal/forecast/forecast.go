// Package forecast fits an automatically selected ARIMA model to a series and
// predicts the next steps.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/goarima/timeseries"

	"github.com/katiamach/weather-forecast-web/internal/metrics"
	"github.com/katiamach/weather-forecast-web/internal/model"
)

// ErrFitFailed is returned when no model could be fitted to the series.
var ErrFitFailed = errors.New("failed to fit forecasting model")

//go:generate mockgen -source=forecast.go -destination=mock/mock.go Fitter,Model

// Fitter selects an order for a series and fits it.
type Fitter interface {
	Fit(series *timeseries.Series) (Model, error)
}

// Model is a fitted model.
type Model interface {
	Order() model.Order
	Predict(steps int) ([]float64, error)
}

// Result is the forecast of one series.
type Result struct {
	Order  model.Order
	Values []float64
}

// Engine produces fixed-horizon forecasts.
type Engine struct {
	fitter  Fitter
	horizon int
}

// NewEngine creates a new Engine predicting horizon steps.
func NewEngine(fitter Fitter, horizon int) *Engine {
	return &Engine{fitter: fitter, horizon: horizon}
}

// Horizon returns the number of predicted steps.
func (e *Engine) Horizon() int {
	return e.horizon
}

// Forecast fits series and returns exactly Horizon values following its end,
// rounded to one decimal. metric only labels instrumentation. The fit itself
// cannot be interrupted; ctx is checked before it starts.
func (e *Engine) Forecast(ctx context.Context, metric string, series *timeseries.Series) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	m, err := e.fitter.Fit(series)
	metrics.FitDuration.WithLabelValues(metric).Observe(time.Since(start).Seconds())
	if err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", metric, err, ErrFitFailed)
	}

	values, err := m.Predict(e.horizon)
	if err != nil {
		return Result{}, fmt.Errorf("%s: failed to predict: %v: %w", metric, err, ErrFitFailed)
	}
	if len(values) < e.horizon {
		return Result{}, fmt.Errorf("%s: got %d of %d predicted values: %w", metric, len(values), e.horizon, ErrFitFailed)
	}

	rounded := make([]float64, e.horizon)
	for i := range rounded {
		rounded[i] = Round1(values[i])
	}

	return Result{Order: m.Order(), Values: rounded}, nil
}

// Round1 rounds v to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
