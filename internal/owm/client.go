// Package owm is a client for the OpenWeatherMap current weather, one-call and
// 5 day forecast endpoints.
package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umahmood/haversine"
	"golang.org/x/time/rate"

	"github.com/katiamach/weather-forecast-web/internal/config"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/metrics"
	"github.com/katiamach/weather-forecast-web/internal/model"
)

// Endpoint names, relative to the base URL.
const (
	EndpointCurrent  = "weather"
	EndpointOneCall  = "onecall"
	EndpointForecast = "forecast"
)

// maxDriftKm is how far the forecast city may lie from the requested point
// before a warning is logged.
const maxDriftKm = 50

// Client talks to OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a new Client.
func New(cfg config.WeatherConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Current fetches the current weather for a city.
func (c *Client) Current(ctx context.Context, city string) (model.Observation, error) {
	params := url.Values{}
	params.Set("q", city)

	body, err := c.fetch(ctx, EndpointCurrent, params)
	if err != nil {
		return model.Observation{}, err
	}

	var resp currentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Observation{}, malformed(EndpointCurrent, err)
	}

	obs := model.Observation{
		City:      resp.Name,
		Country:   resp.Sys.Country,
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		TempMin:   resp.Main.TempMin,
		TempMax:   resp.Main.TempMax,
		Humidity:  resp.Main.Humidity,
	}
	if len(resp.Weather) > 0 {
		obs.Description = resp.Weather[0].Description
	}
	if resp.Coord != nil && resp.Coord.Lat != nil && resp.Coord.Lon != nil {
		obs.Coord = &model.Coordinates{Lat: *resp.Coord.Lat, Lon: *resp.Coord.Lon}
	}

	return obs, nil
}

// OneCallHourly fetches the hourly forecast from the one-call endpoint.
func (c *Client) OneCallHourly(ctx context.Context, coord model.Coordinates) (*HourlyPayload, error) {
	body, err := c.fetch(ctx, EndpointOneCall, coordParams(coord))
	if err != nil {
		return nil, err
	}

	var resp oneCallResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, malformed(EndpointOneCall, err)
	}
	if resp.Hourly == nil {
		return nil, missingField(EndpointOneCall, body, "hourly")
	}

	return &HourlyPayload{Source: SourceOneCall, OneCall: *resp.Hourly}, nil
}

// ForecastHourly fetches the 3-hourly forecast and keeps the first limit entries.
func (c *Client) ForecastHourly(ctx context.Context, coord model.Coordinates, limit int) (*HourlyPayload, error) {
	body, err := c.fetch(ctx, EndpointForecast, coordParams(coord))
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, malformed(EndpointForecast, err)
	}
	if resp.List == nil {
		return nil, missingField(EndpointForecast, body, "list")
	}

	if cc := resp.City.Coord; cc != nil && cc.Lat != nil && cc.Lon != nil {
		_, km := haversine.Distance(
			haversine.Coord{Lat: coord.Lat, Lon: coord.Lon},
			haversine.Coord{Lat: *cc.Lat, Lon: *cc.Lon},
		)
		if km > maxDriftKm {
			logger.WithFields(logger.Fields{
				"city":     resp.City.Name,
				"distance": km,
			}).Warn("forecast location differs from requested coordinates")
		}
	}

	list := *resp.List
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	return &HourlyPayload{Source: SourceForecast, Forecast: list}, nil
}

func coordParams(coord model.Coordinates) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	return params
}

// fetch performs a GET on the endpoint and returns the body of a successful
// response. Any other outcome is returned as *Error.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "throttled").Inc()
		return nil, &Error{Kind: KindUpstream, Endpoint: endpoint, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, &Error{Kind: KindUpstream, Endpoint: endpoint, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, &Error{Kind: KindUpstream, Endpoint: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "malformed").Inc()
		return nil, malformed(endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, classify(endpoint, resp.StatusCode, env)
	}
	if code, ok := env.code(); ok && code != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, classify(endpoint, resp.StatusCode, env)
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	logger.WithFields(logger.Fields{"endpoint": endpoint, "bytes": len(body)}).Debug("weather provider response received")

	return body, nil
}

func malformed(endpoint string, err error) *Error {
	return &Error{
		Kind:     KindMalformedResponse,
		Endpoint: endpoint,
		Message:  fmt.Sprintf("Invalid response from %s API.", endpoint),
		Err:      err,
	}
}

// missingField reports a 200 response lacking the expected payload field.
func missingField(endpoint string, body []byte, field string) *Error {
	var env envelope
	_ = json.Unmarshal(body, &env)

	return &Error{
		Kind:     KindMalformedResponse,
		Endpoint: endpoint,
		Status:   http.StatusOK,
		Message:  env.Message,
		Err:      fmt.Errorf("response has no %q field", field),
	}
}
