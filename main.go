package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iot-telemetry-backend/internal/api"
	"iot-telemetry-backend/internal/config"
	"iot-telemetry-backend/internal/db"
	"iot-telemetry-backend/internal/feed"

	"github.com/go-chi/chi/v5"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	writer := feed.NewWriter(cfg.Brokers(), cfg.FeedTopic)
	notifier := feed.NewNotifier(writer)
	defer notifier.Close()

	a := api.New(api.Config{
		DB:   store,
		Feed: notifier,
	})
	r := chi.NewRouter()
	a.RegisterRoutes(r)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		slog.InfoContext(ctx, "HTTP server listening...", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	select {
	case <-sigs:
	case <-ctx.Done():
	}
	cancel()

	slog.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}
}
