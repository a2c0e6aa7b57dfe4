// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/rr-ventures/website-aiusecases/internal/api"
	"github.com/rr-ventures/website-aiusecases/internal/dataset"
	"github.com/rr-ventures/website-aiusecases/internal/sse"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("wins_path", cfg.Data.WinsPath),
		slog.String("timeline_path", cfg.Data.TimelinePath),
		slog.Bool("watch", cfg.Data.Watch),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Dataset pipeline: sources -> loader -> snapshot store.
	loader := dataset.NewLoader(
		dataset.NewSource(cfg.Data.WinsPath),
		dataset.NewSource(cfg.Data.TimelinePath),
	)
	store := dataset.NewStore()

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	reloader := dataset.NewReloader(loader, store, logger, func(snap *dataset.Snapshot) {
		broker.PublishReload(len(snap.Wins), len(snap.Days))
	})

	// Initial load. A failure is not fatal: the API answers 503 until a
	// watcher-triggered reload succeeds.
	if err := reloader.Reload(ctx); err != nil {
		logger.Warn("initial dataset load failed, serving unavailable until reload",
			slog.String("error", err.Error()))
	}

	// Build API service and router.
	svc := api.NewService(store)
	apiRouter := api.NewRouter(svc, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !svc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"loading"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start dataset file watcher, reloading on change.
	if cfg.Data.Watch {
		if paths := localDataPaths(cfg); len(paths) > 0 {
			g.Go(func() error {
				return dataset.Watch(gCtx, paths, logger, func() {
					if err := reloader.Reload(gCtx); err != nil {
						logger.Error("dataset reload failed", slog.String("error", err.Error()))
					}
				})
			})
		}
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// localDataPaths returns the configured dataset paths that live on the local
// filesystem. HTTP sources cannot be watched.
func localDataPaths(cfg *Config) []string {
	var paths []string
	for _, p := range []string{cfg.Data.WinsPath, cfg.Data.TimelinePath} {
		if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
