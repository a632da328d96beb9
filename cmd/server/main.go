package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mikiyas/txboard/internal/config"
	"github.com/mikiyas/txboard/internal/dashboard"
	"github.com/mikiyas/txboard/internal/logging"
	"github.com/mikiyas/txboard/internal/server"
	"github.com/mikiyas/txboard/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	client, err := upstream.NewHTTPClient(upstream.Options{
		BaseURL:   cfg.Upstream.BaseURL,
		APIKey:    cfg.Upstream.APIKey,
		APISecret: cfg.Upstream.APISecret,
		Timeout:   cfg.Upstream.Timeout,
	})
	if err != nil {
		logger.Error("failed to create upstream client", "error", err)
		os.Exit(1)
	}

	apiHandlers := server.NewAPIHandlers(logger, client)

	dashboardHandler, err := dashboard.NewHandler(logger, client, time.Local)
	if err != nil {
		logger.Error("failed to build dashboard", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.UpstreamHealthService{Client: client},
		API:              apiHandlers,
		Dashboard:        dashboardHandler,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
