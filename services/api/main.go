package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/db"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/rest"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/rest/handlers"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/web"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/config"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/pkg/client"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	storage, err := db.New(log, cfg.DB.Driver, cfg.DB.Address)
	if err != nil {
		log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer func() { _ = storage.Close() }()

	if err := storage.Migrate(); err != nil {
		log.Error("failed to migrate db", "error", err)
		os.Exit(1)
	}

	svc := core.NewService(storage)
	deps := core.Deps{
		DB:    storage,
		Notes: svc,
		Todos: svc,
	}

	mux := http.NewServeMux()
	handlers.Register(mux, log, deps, cfg.HTTP.Timeout)

	if cfg.UI.Enabled {
		api := client.New(cfg.UI.APIURL)
		ui, err := web.New(log, api, api, cfg.HTTP.Timeout)
		if err != nil {
			log.Error("cannot init ui", "error", err)
			os.Exit(1)
		}
		ui.Register(mux)
	}

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           rest.WithRecover(log, rest.WithRequestLog(log, mux)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("notes http server", "address", server.Addr, "db", cfg.DB.Driver, "ui", cfg.UI.Enabled)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
