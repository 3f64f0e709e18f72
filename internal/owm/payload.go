package owm

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Source identifies which provider endpoint produced an hourly payload.
type Source string

// Hourly sources.
const (
	SourceOneCall  Source = "onecall"
	SourceForecast Source = "forecast"
)

// Step is the spacing between consecutive entries of the source.
func (s Source) Step() time.Duration {
	if s == SourceForecast {
		return 3 * time.Hour
	}
	return time.Hour
}

// HourlyPayload is the tagged result of an hourly fetch. Exactly one of
// OneCall and Forecast is populated, as selected by Source.
type HourlyPayload struct {
	Source   Source
	OneCall  []OneCallHour
	Forecast []ForecastEntry
}

// Len returns the number of entries regardless of the source.
func (p *HourlyPayload) Len() int {
	if p == nil {
		return 0
	}
	if p.Source == SourceForecast {
		return len(p.Forecast)
	}
	return len(p.OneCall)
}

// OneCallHour is an entry of the one-call "hourly" array. Values are flat.
type OneCallHour struct {
	Dt       int64    `json:"dt"`
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

// ForecastEntry is an entry of the 5 day forecast "list" array. Values are
// nested under "main".
type ForecastEntry struct {
	Dt   int64         `json:"dt"`
	Main *ForecastMain `json:"main"`
}

// ForecastMain holds the measured values of a forecast entry.
type ForecastMain struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

type envelope struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// code decodes "cod", which the provider sends either as a number or a string.
func (e envelope) code() (int, bool) {
	if len(e.Cod) == 0 {
		return 0, false
	}
	c, err := strconv.Atoi(strings.Trim(string(e.Cod), `"`))
	if err != nil {
		return 0, false
	}
	return c, true
}

type coordJSON struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type currentResponse struct {
	Name  string     `json:"name"`
	Coord *coordJSON `json:"coord"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type oneCallResponse struct {
	Hourly *[]OneCallHour `json:"hourly"`
}

type forecastResponse struct {
	List *[]ForecastEntry `json:"list"`
	City struct {
		Name  string     `json:"name"`
		Coord *coordJSON `json:"coord"`
	} `json:"city"`
}
