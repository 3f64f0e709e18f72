package series

import (
	"errors"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-forecast-web/internal/owm"
)

func ptr(v float64) *float64 { return &v }

func oneCall(n int) *owm.HourlyPayload {
	p := &owm.HourlyPayload{Source: owm.SourceOneCall}
	for i := 0; i < n; i++ {
		p.OneCall = append(p.OneCall, owm.OneCallHour{Dt: int64(i), Temp: ptr(float64(i)), Humidity: ptr(50 + float64(i))})
	}
	return p
}

func TestBuildOneCall(t *testing.T) {
	p := oneCall(12)
	p.OneCall[3].Humidity = nil
	p.OneCall[7].Temp = nil

	w, err := Builder{Limit: 48, MinSamples: 10}.Build(p)
	assert.NoError(t, err)

	assert.Equal(t, owm.SourceOneCall, w.Source)
	assert.Equal(t, time.Hour, w.Step)
	assert.Len(t, w.Samples, 10)
	assert.Equal(t, []float64{0, 1, 2, 4, 5, 6, 8, 9, 10, 11}, w.Temps())
	assert.Equal(t, 4, w.Samples[3].Index)
	assert.Equal(t, 54.0, w.Samples[3].Humidity)
}

func TestBuildKeepsZeroValues(t *testing.T) {
	p := oneCall(10)
	p.OneCall[0].Humidity = ptr(0)

	w, err := Builder{Limit: 48, MinSamples: 10}.Build(p)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, w.Humidities()[0])
}

func TestBuildLimitsWindow(t *testing.T) {
	w, err := Builder{Limit: 48, MinSamples: 10}.Build(oneCall(60))
	assert.NoError(t, err)
	assert.Len(t, w.Samples, 48)
	assert.Equal(t, 47, w.Samples[47].Index)
}

func TestBuildForecast(t *testing.T) {
	p := &owm.HourlyPayload{Source: owm.SourceForecast}
	for i := 0; i < 11; i++ {
		p.Forecast = append(p.Forecast, owm.ForecastEntry{
			Dt:   int64(i),
			Main: &owm.ForecastMain{Temp: ptr(float64(i)), Humidity: ptr(70)},
		})
	}
	p.Forecast = append(p.Forecast, owm.ForecastEntry{Dt: 99})

	w, err := Builder{Limit: 48, MinSamples: 10}.Build(p)
	assert.NoError(t, err)

	assert.Equal(t, 3*time.Hour, w.Step)
	assert.Len(t, w.Samples, 11)
	assert.Equal(t, 70.0, w.Humidities()[10])
}

func TestBuildInsufficientData(t *testing.T) {
	cases := []struct {
		name    string
		payload *owm.HourlyPayload
	}{
		{name: "nil payload", payload: nil},
		{name: "empty", payload: &owm.HourlyPayload{Source: owm.SourceOneCall}},
		{name: "nine samples", payload: oneCall(9)},
		{name: "incomplete entries", payload: func() *owm.HourlyPayload {
			p := oneCall(12)
			for i := 0; i < 3; i++ {
				p.OneCall[i].Temp = nil
			}
			return p
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Builder{Limit: 48, MinSamples: 10}.Build(tc.payload)
			assert.True(t, errors.Is(err, ErrInsufficientData), "got %v", err)
		})
	}
}

func TestBuildUnknownSource(t *testing.T) {
	_, err := Builder{Limit: 48, MinSamples: 10}.Build(&owm.HourlyPayload{Source: "daily"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInsufficientData))
}
