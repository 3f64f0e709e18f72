// Package series turns an hourly provider payload into the sample window the
// forecast engine is fitted on.
package series

import (
	"errors"
	"fmt"
	"time"

	"github.com/katiamach/weather-forecast-web/internal/model"
	"github.com/katiamach/weather-forecast-web/internal/owm"
)

// ErrInsufficientData is returned when a payload holds too few complete samples.
var ErrInsufficientData = errors.New("not enough hourly data for prediction")

// Window is an ordered set of complete samples from a single source.
type Window struct {
	Source  owm.Source
	Step    time.Duration
	Samples []model.Sample
}

// Temps returns the temperature column.
func (w Window) Temps() []float64 {
	out := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		out[i] = s.Temp
	}
	return out
}

// Humidities returns the humidity column.
func (w Window) Humidities() []float64 {
	out := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		out[i] = s.Humidity
	}
	return out
}

// Builder extracts windows of at most Limit entries and requires MinSamples
// complete samples.
type Builder struct {
	Limit      int
	MinSamples int
}

// Build extracts the window from the payload. Entries missing temperature or
// humidity are skipped; a sample's index is its position in the payload.
func (b Builder) Build(p *owm.HourlyPayload) (Window, error) {
	if p == nil {
		return Window{}, fmt.Errorf("no hourly payload: %w", ErrInsufficientData)
	}

	var samples []model.Sample
	switch p.Source {
	case owm.SourceOneCall:
		samples = fromOneCall(p.OneCall, b.Limit)
	case owm.SourceForecast:
		samples = fromForecast(p.Forecast, b.Limit)
	default:
		return Window{}, fmt.Errorf("unknown hourly source %q", p.Source)
	}

	if len(samples) < b.MinSamples {
		return Window{}, fmt.Errorf("%d of %d required samples from %s: %w", len(samples), b.MinSamples, p.Source, ErrInsufficientData)
	}

	return Window{Source: p.Source, Step: p.Source.Step(), Samples: samples}, nil
}

func fromOneCall(hours []owm.OneCallHour, limit int) []model.Sample {
	hours = truncate(hours, limit)

	samples := make([]model.Sample, 0, len(hours))
	for i, h := range hours {
		if h.Temp == nil || h.Humidity == nil {
			continue
		}
		samples = append(samples, model.Sample{Index: i, Temp: *h.Temp, Humidity: *h.Humidity})
	}
	return samples
}

func fromForecast(entries []owm.ForecastEntry, limit int) []model.Sample {
	entries = truncate(entries, limit)

	samples := make([]model.Sample, 0, len(entries))
	for i, e := range entries {
		if e.Main == nil || e.Main.Temp == nil || e.Main.Humidity == nil {
			continue
		}
		samples = append(samples, model.Sample{Index: i, Temp: *e.Main.Temp, Humidity: *e.Main.Humidity})
	}
	return samples
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
