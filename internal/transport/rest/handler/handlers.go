package handler

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/model"
	"github.com/katiamach/weather-forecast-web/internal/presenter"
	"github.com/katiamach/weather-forecast-web/internal/service"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	Lookup(ctx context.Context, city string) (model.Observation, error)
	Predict(ctx context.Context, city string) (model.Observation, *model.Prediction, error)
	History(ctx context.Context, city string, limit int) ([]*model.PredictionRecord, error)
}

// WeatherServer is a server for weather lookups and predictions.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

type errorPage struct {
	Message string
}

type predictResponse struct {
	Observation model.Observation `json:"observation"`
	Prediction  *model.Prediction `json:"prediction"`
	StepHours   int               `json:"step_hours"`
	Notice      string            `json:"notice,omitempty"`
}

// HomeHandler renders the lookup form and, on POST, the current weather.
func (s *WeatherServer) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, http.StatusOK, "index.html", presenter.PredictionView{})
		return
	}

	city := strings.TrimSpace(r.FormValue("city"))
	if city == "" {
		renderErr(w, service.ErrEmptyInput)
		return
	}

	obs, err := s.service.Lookup(r.Context(), city)
	if err != nil {
		renderErr(w, err)
		return
	}

	render(w, http.StatusOK, "index.html", presenter.PredictionView{LookupView: presenter.Lookup(obs)})
}

// PredictHandler renders the prediction form and, on POST, the forecast.
func (s *WeatherServer) PredictHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, http.StatusOK, "index.html", presenter.PredictionView{})
		return
	}

	city := strings.TrimSpace(r.FormValue("city"))
	if city == "" {
		renderErr(w, service.ErrEmptyInput)
		return
	}

	obs, pred, err := s.service.Predict(r.Context(), city)
	if err != nil {
		renderErr(w, err)
		return
	}

	render(w, http.StatusOK, "index.html", presenter.Prediction(obs, pred))
}

// LookupAPIHandler handles GET /api/weather.
func (s *WeatherServer) LookupAPIHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityParam(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	obs, err := s.service.Lookup(r.Context(), city)
	if err != nil {
		code, msg := classify(err)
		respondErr(w, code, errors.New(msg))
		return
	}

	respond(w, http.StatusOK, obs)
}

// PredictAPIHandler handles GET /api/predict.
func (s *WeatherServer) PredictAPIHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityParam(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	obs, pred, err := s.service.Predict(r.Context(), city)
	if err != nil {
		code, msg := classify(err)
		respondErr(w, code, errors.New(msg))
		return
	}

	respond(w, http.StatusOK, predictResponse{
		Observation: obs,
		Prediction:  pred,
		StepHours:   int(pred.Step / time.Hour),
		Notice:      presenter.Prediction(obs, pred).Notice,
	})
}

// HistoryHandler handles GET /api/predictions.
func (s *WeatherServer) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	city, limit, err := validateHistoryParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	records, err := s.service.History(r.Context(), city, limit)
	if err != nil {
		code, msg := classify(err)
		respondErr(w, code, errors.New(msg))
		return
	}

	respond(w, http.StatusOK, records)
}

// HealthHandler reports that the server is up.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func cityParam(params url.Values) (string, error) {
	city := strings.TrimSpace(params.Get("city"))
	if city == "" {
		return "", errors.New("city parameter not provided in query")
	}
	return city, nil
}

func validateHistoryParams(params url.Values) (string, int, error) {
	city, err := cityParam(params)
	if err != nil {
		return "", 0, err
	}

	limitStr := params.Get("limit")
	if limitStr == "" {
		return city, defaultHistoryLimit, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return "", 0, errors.New("invalid limit parameter")
	}
	if limit < 1 || limit > maxHistoryLimit {
		return "", 0, fmt.Errorf("limit should be between 1 and %d", maxHistoryLimit)
	}

	return city, limit, nil
}

func render(w http.ResponseWriter, code int, name string, data interface{}) {
	var buf strings.Builder
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error(fmt.Errorf("failed to render %s: %w", name, err))
		http.Error(w, "can't render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(buf.String())); err != nil {
		logger.Error(fmt.Errorf("failed to write page: %w", err))
	}
}

func renderErr(w http.ResponseWriter, err error) {
	code, msg := classify(err)
	render(w, code, "error.html", errorPage{Message: msg})
}
