package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/katiamach/weather-forecast-web/internal/logger"
)

type errorResponse struct {
	Code    int
	Message string
}

// respond sends payload as a JSON response.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// respondErr sends err as a JSON error response.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}
