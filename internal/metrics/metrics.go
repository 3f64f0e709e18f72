// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weather_forecast"

var (
	// UpstreamRequests counts provider calls by endpoint and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Weather provider requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// UpstreamDuration observes provider call latency.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Weather provider request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// FitDuration observes model selection and fitting time per metric.
	FitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "model_fit_duration_seconds",
		Help:      "ARIMA order selection and fit duration.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30},
	}, []string{"metric"})

	// Predictions counts prediction requests by hourly source and outcome.
	Predictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Prediction requests by hourly source and outcome.",
	}, []string{"source", "outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"handler", "code", "method"})
)

// Handler exposes the registered collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument counts requests served by h under the given handler name.
func Instrument(name string, h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(httpRequests.MustCurryWith(prometheus.Labels{"handler": name}), h)
}
