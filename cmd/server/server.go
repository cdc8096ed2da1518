package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It blocks until the server exits, either through a shutdown signal or a
// listener failure.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.shutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return nil
}
