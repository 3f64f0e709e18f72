package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/katiamach/weather-forecast-web/internal/forecast"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/owm"
	"github.com/katiamach/weather-forecast-web/internal/repository"
	"github.com/katiamach/weather-forecast-web/internal/series"
	"github.com/katiamach/weather-forecast-web/internal/service"
)

const (
	msgEmptyInput        = "Please enter a city name."
	msgLookupFailed      = "City not found or invalid API key."
	msgMissingCoords     = "Coordinates not found for city."
	msgHourlyUnavailable = "Hourly forecast not available from APIs."
	msgInsufficientData  = "Not enough hourly data for prediction."
	msgFitFailed         = "Could not fit a forecasting model to the hourly data."
	msgHistoryDisabled   = "Prediction history is not enabled."
	msgNoPredictions     = "There are no predictions for this city yet."
	msgTimeout           = "The weather provider did not answer in time."
	msgInternal          = "Something went wrong, please try again later."
)

// classify maps a service error to the HTTP status and the message shown to
// the user. Unexpected errors are logged at Error level, the rest at Info.
func classify(err error) (int, string) {
	code, msg := status(err)

	entry := logger.WithFields(logger.Fields{"status": code, "error": err})
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		entry.Error("request failed")
	} else {
		entry.Info("request rejected")
	}

	return code, msg
}

func status(err error) (int, string) {
	var oe *owm.Error
	hasProviderErr := errors.As(err, &oe)

	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return http.StatusBadRequest, msgEmptyInput
	case errors.Is(err, service.ErrMissingCoordinates):
		return http.StatusUnprocessableEntity, msgMissingCoords
	case errors.Is(err, service.ErrHourlyDataUnavailable):
		if hasProviderErr && oe.Message != "" {
			return http.StatusBadGateway, oe.Message
		}
		return http.StatusBadGateway, msgHourlyUnavailable
	case errors.Is(err, series.ErrInsufficientData):
		return http.StatusUnprocessableEntity, msgInsufficientData
	case errors.Is(err, forecast.ErrFitFailed):
		return http.StatusInternalServerError, msgFitFailed
	case errors.Is(err, service.ErrHistoryDisabled):
		return http.StatusServiceUnavailable, msgHistoryDisabled
	case errors.Is(err, repository.ErrNoPredictions):
		return http.StatusNotFound, msgNoPredictions
	case hasProviderErr:
		return providerStatus(oe)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, msgTimeout
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func providerStatus(oe *owm.Error) (int, string) {
	msg := oe.Message
	if msg == "" {
		msg = msgLookupFailed
	}

	switch {
	case errors.Is(oe, owm.ErrNotFound):
		return http.StatusNotFound, msg
	case errors.Is(oe, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, msgTimeout
	default:
		return http.StatusBadGateway, msg
	}
}
