// Package model contains the domain types shared between the weather client,
// the forecasting pipeline and the web layer.
package model

import "time"

// Coordinates is a resolved geographic position.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// Observation is the current weather for a city as returned by the provider.
type Observation struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Temp        float64      `json:"temp"`
	FeelsLike   float64      `json:"feels_like"`
	TempMin     float64      `json:"temp_min"`
	TempMax     float64      `json:"temp_max"`
	Humidity    float64      `json:"humidity"`
	Description string       `json:"description"`
	Coord       *Coordinates `json:"coord,omitempty"`
}

// Sample is one hourly point of the window fed to the forecast engine.
type Sample struct {
	Index    int
	Temp     float64
	Humidity float64
}

// Order is an ARIMA (p, d, q) order.
type Order struct {
	P int `json:"p" bson:"p"`
	D int `json:"d" bson:"d"`
	Q int `json:"q" bson:"q"`
}

// Point is a labelled forecast value.
type Point struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}

// Prediction holds the forecasts for both metrics.
type Prediction struct {
	Source       string        `json:"source"`
	Step         time.Duration `json:"-"`
	Samples      int           `json:"samples"`
	TempOrder    Order         `json:"temp_order"`
	HumOrder     Order         `json:"hum_order"`
	Temperatures []Point       `json:"temperatures"`
	Humidities   []Point       `json:"humidities"`
}

// PredictionRecord is a completed prediction as kept in history.
type PredictionRecord struct {
	ID           string      `json:"id" bson:"_id"`
	Key          string      `json:"-" bson:"key"`
	City         string      `json:"city" bson:"city"`
	Country      string      `json:"country" bson:"country"`
	Coord        Coordinates `json:"coord" bson:"coord"`
	Source       string      `json:"source" bson:"source"`
	Samples      int         `json:"samples" bson:"samples"`
	TempOrder    Order       `json:"temp_order" bson:"tempOrder"`
	HumOrder     Order       `json:"hum_order" bson:"humOrder"`
	Temperatures []Point     `json:"temperatures" bson:"temperatures"`
	Humidities   []Point     `json:"humidities" bson:"humidities"`
	CreatedAt    time.Time   `json:"created_at" bson:"createdAt"`
}
