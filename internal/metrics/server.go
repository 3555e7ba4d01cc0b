package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Belphemur/SubtitleFetcher/internal/config"
)

const shutdownTimeout = 5 * time.Second

// NewHTTPServer creates an HTTP server that exposes Prometheus metrics at /metrics.
func NewHTTPServer(address string, port int) *http.Server {
	if port == 0 {
		port = 9090
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve runs srv in the background and returns a function that shuts it down.
// A listen failure is logged and the session continues without metrics.
func Serve(srv *http.Server) (stop func()) {
	logger := config.GetLogger()

	go func() {
		logger.Info().Str("address", srv.Addr).Msg("Starting Prometheus metrics HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("address", srv.Addr).Msg("Failed to serve metrics")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}
}
