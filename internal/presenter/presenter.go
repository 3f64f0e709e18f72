// Package presenter maps observations and forecasts to the values rendered by
// the page templates.
package presenter

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katiamach/weather-forecast-web/internal/forecast"
	"github.com/katiamach/weather-forecast-web/internal/model"
)

// LabelLayout is the wall-clock format of forecast labels.
const LabelLayout = "15:04"

var titleCaser = cases.Title(language.English)

// LookupView is rendered after a current weather lookup.
type LookupView struct {
	Status      bool
	City        string
	Country     string
	Description string
	CurrentTemp int
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    float64
}

// PredictionView is rendered after a prediction.
type PredictionView struct {
	LookupView

	PredictStatus bool
	Source        string
	Notice        string
	TempOrder     model.Order
	HumOrder      model.Order
	Temperatures  []model.Point
	Humidities    []model.Point

	TLabels []string
	TValues []float64
	HLabels []string
	HValues []float64
}

// Labels returns n labels for now + i hours, i = 0..n-1.
func Labels(now time.Time, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = now.Add(time.Duration(i) * time.Hour).Format(LabelLayout)
	}
	return labels
}

// Points pairs labels with values; the shorter input bounds the result.
func Points(labels []string, values []float64) []model.Point {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}

	points := make([]model.Point, n)
	for i := range points {
		points[i] = model.Point{Label: labels[i], Value: values[i]}
	}
	return points
}

// Lookup renders an observation with whole-number values.
func Lookup(obs model.Observation) LookupView {
	return LookupView{
		Status:      true,
		City:        obs.City,
		Country:     obs.Country,
		Description: titleCaser.String(obs.Description),
		CurrentTemp: roundInt(obs.Temp),
		FeelsLike:   float64(roundInt(obs.FeelsLike)),
		TempMin:     float64(roundInt(obs.TempMin)),
		TempMax:     float64(roundInt(obs.TempMax)),
		Humidity:    float64(roundInt(obs.Humidity)),
	}
}

// Prediction renders an observation together with its forecast. The current
// temperature is a whole number, the other current values keep one decimal.
func Prediction(obs model.Observation, p *model.Prediction) PredictionView {
	v := PredictionView{
		LookupView: LookupView{
			Status:      true,
			City:        obs.City,
			Country:     obs.Country,
			Description: titleCaser.String(obs.Description),
			CurrentTemp: roundInt(obs.Temp),
			FeelsLike:   forecast.Round1(obs.FeelsLike),
			TempMin:     forecast.Round1(obs.TempMin),
			TempMax:     forecast.Round1(obs.TempMax),
			Humidity:    forecast.Round1(obs.Humidity),
		},
		PredictStatus: true,
		Source:        p.Source,
		TempOrder:     p.TempOrder,
		HumOrder:      p.HumOrder,
		Temperatures:  p.Temperatures,
		Humidities:    p.Humidities,
	}

	if p.Step > time.Hour {
		v.Notice = fmt.Sprintf("Hourly data was unavailable; the model was fitted on %s forecast buckets.", formatStep(p.Step))
	}

	v.TLabels, v.TValues = split(p.Temperatures)
	v.HLabels, v.HValues = split(p.Humidities)

	return v
}

func split(points []model.Point) ([]string, []float64) {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		values[i] = p.Value
	}
	return labels, values
}

func formatStep(d time.Duration) string {
	return fmt.Sprintf("%d-hour", int(d/time.Hour))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
