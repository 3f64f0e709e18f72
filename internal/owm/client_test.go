package owm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-forecast-web/internal/config"
	"github.com/katiamach/weather-forecast-web/internal/model"
)

const currentOK = `{
	"coord": {"lon": 13.41, "lat": 52.52},
	"weather": [{"description": "light rain"}],
	"main": {"temp": 14.6, "feels_like": 13.9, "temp_min": 12.2, "temp_max": 16.4, "humidity": 77},
	"sys": {"country": "DE"},
	"name": "Berlin",
	"cod": 200
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.WeatherConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Timeout:   time.Second,
		RateLimit: 100,
		RateBurst: 10,
	})
}

func TestCurrent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		fmt.Fprint(w, currentOK)
	})

	obs, err := c.Current(context.Background(), "Berlin")
	assert.NoError(t, err)

	assert.Equal(t, model.Observation{
		City:        "Berlin",
		Country:     "DE",
		Temp:        14.6,
		FeelsLike:   13.9,
		TempMin:     12.2,
		TempMax:     16.4,
		Humidity:    77,
		Description: "light rain",
		Coord:       &model.Coordinates{Lat: 52.52, Lon: 13.41},
	}, obs)
}

func TestCurrentWithoutCoordinates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": "Nowhere", "main": {"temp": 1}, "coord": {"lat": 1.5}, "cod": 200}`)
	})

	obs, err := c.Current(context.Background(), "Nowhere")
	assert.NoError(t, err)
	assert.Nil(t, obs.Coord)
}

func TestCurrentErrors(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		expected error
		message  string
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"cod": "404", "message": "city not found"}`,
			expected: ErrNotFound,
			message:  "city not found",
		},
		{
			name:     "invalid key",
			status:   http.StatusUnauthorized,
			body:     `{"cod": 401, "message": "Invalid API key."}`,
			expected: ErrInvalidKey,
			message:  "Invalid API key.",
		},
		{
			name:     "error code in ok response",
			status:   http.StatusOK,
			body:     `{"cod": "404", "message": "city not found"}`,
			expected: ErrNotFound,
			message:  "city not found",
		},
		{
			name:     "not json",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			expected: ErrMalformedResponse,
			message:  "Invalid response from weather API.",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `{"cod": 500}`,
			expected: ErrUpstream,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			})

			_, err := c.Current(context.Background(), "Atlantis")
			assert.True(t, errors.Is(err, tc.expected), "got %v", err)

			var oe *Error
			assert.True(t, errors.As(err, &oe))
			assert.Equal(t, tc.message, oe.Message)
		})
	}
}

func TestCurrentTransportFailure(t *testing.T) {
	c := New(config.WeatherConfig{
		BaseURL:   "http://127.0.0.1:1",
		Timeout:   100 * time.Millisecond,
		RateLimit: 100,
		RateBurst: 1,
	})

	_, err := c.Current(context.Background(), "Berlin")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestOneCallHourly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onecall", r.URL.Path)
		assert.Equal(t, "52.52", r.URL.Query().Get("lat"))
		assert.Equal(t, "13.41", r.URL.Query().Get("lon"))
		fmt.Fprint(w, `{"hourly": [{"dt": 1, "temp": 10.5, "humidity": 80}, {"dt": 2, "temp": 11}]}`)
	})

	payload, err := c.OneCallHourly(context.Background(), model.Coordinates{Lat: 52.52, Lon: 13.41})
	assert.NoError(t, err)

	assert.Equal(t, SourceOneCall, payload.Source)
	assert.Equal(t, 2, payload.Len())
	assert.Equal(t, 10.5, *payload.OneCall[0].Temp)
	assert.Nil(t, payload.OneCall[1].Humidity)
}

func TestOneCallHourlyMissingField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"lat": 52.52}`)
	})

	_, err := c.OneCallHourly(context.Background(), model.Coordinates{Lat: 52.52, Lon: 13.41})
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestForecastHourlyTruncates(t *testing.T) {
	entries := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		entries = append(entries, fmt.Sprintf(`{"dt": %d, "main": {"temp": %d, "humidity": 60}}`, i, i))
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		fmt.Fprintf(w, `{"cod": "200", "list": [%s], "city": {"name": "Berlin", "coord": {"lat": 52.52, "lon": 13.41}}}`,
			strings.Join(entries, ","))
	})

	payload, err := c.ForecastHourly(context.Background(), model.Coordinates{Lat: 52.52, Lon: 13.41}, 16)
	assert.NoError(t, err)

	assert.Equal(t, SourceForecast, payload.Source)
	assert.Equal(t, 16, payload.Len())
	assert.Equal(t, 15.0, *payload.Forecast[15].Main.Temp)
}

func TestForecastHourlyMissingList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cod": "200", "message": "nothing here"}`)
	})

	_, err := c.ForecastHourly(context.Background(), model.Coordinates{}, 48)
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	var oe *Error
	assert.True(t, errors.As(err, &oe))
	assert.Equal(t, "nothing here", oe.Message)
}

func TestFetchHonoursCanceledContext(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, currentOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Current(ctx, "Berlin")
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
