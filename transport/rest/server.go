package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// NewRouter registers every REST route on a fresh mux.
func NewRouter(ping PingHandler, games GameHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", ping.PingHandler)
	mux.HandleFunc("GET /games/{id}", games.GetGame)
	mux.HandleFunc("GET /results", games.Results)

	return mux
}

// Start - starts the HTTP server and stops it when ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
