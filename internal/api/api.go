package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-forecast-web/internal/config"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/metrics"
	"github.com/katiamach/weather-forecast-web/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers the page, API and operational routes.
func NewRouter(server *handler.WeatherServer) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", metrics.Instrument("home", http.HandlerFunc(server.HomeHandler))).Methods("GET", "POST")
	r.Handle("/predict-weather", metrics.Instrument("predict", http.HandlerFunc(server.PredictHandler))).Methods("GET", "POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/weather", metrics.Instrument("api_weather", http.HandlerFunc(server.LookupAPIHandler))).Methods("GET")
	api.Handle("/predict", metrics.Instrument("api_predict", http.HandlerFunc(server.PredictAPIHandler))).Methods("GET")
	api.Handle("/predictions", metrics.Instrument("api_predictions", http.HandlerFunc(server.HistoryHandler))).Methods("GET")

	r.HandleFunc("/health", handler.HealthHandler).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	r.Use(requestID)

	return r
}

// Handler wraps the router with CORS, access logging and panic recovery.
func Handler(cfg config.Config, server *handler.WeatherServer) http.Handler {
	h := handlers.CORS(setupCorsOptions(cfg.AllowedOrigin)...)(NewRouter(server))
	h = handlers.CombinedLoggingHandler(logger.Writer(), h)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)
}

// RunAPI runs weather forecast API until ctx is canceled.
func RunAPI(ctx context.Context, cfg config.Config, server *handler.WeatherServer) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           Handler(cfg, server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather forecast api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down weather forecast api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error(fmt.Errorf("recovered from panic: %s", fmt.Sprint(v...)))
}
