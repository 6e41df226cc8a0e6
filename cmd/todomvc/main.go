// Package main serves todo list over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/swaggest/todomvc/internal/infra"
	"github.com/swaggest/todomvc/internal/infra/nethttp"
	"github.com/swaggest/todomvc/internal/infra/service"
)

func main() {
	// Values from .env do not override environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal(err)
	}

	// Initialize config from ENV vars.
	cfg := service.Config{}

	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	// Initialize application resources.
	l, err := infra.NewServiceLocator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Terminate service locator on CTRL+C (SIGTERM or SIGINT).
	l.EnableGracefulShutdown()

	// Initialize HTTP server.
	srv := http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           nethttp.NewRouter(l),
		ReadHeaderTimeout: 9 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start HTTP server.
	l.CtxdLogger.Important(ctx, "starting HTTP server",
		"url", fmt.Sprintf("http://localhost:%d/", cfg.HTTPPort),
		"docs", fmt.Sprintf("http://localhost:%d/docs", cfg.HTTPPort),
		"dataSource", cfg.DataSource, "storage", cfg.Storage)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Wait for termination signal and HTTP shutdown finished.
	if err := l.WaitToShutdownHTTP(&srv, "http"); err != nil {
		log.Fatal(err)
	}

	// Wait for service locator termination finished.
	if err := l.Wait(); err != nil {
		log.Fatal(err)
	}

	l.CtxdLogger.Important(ctx, "stopped")
}
