package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/analytics/store"
	"github.com/aria-finance/analytics/internal/config"
	"github.com/aria-finance/analytics/internal/database"
	ariaHttp "github.com/aria-finance/analytics/internal/http"
	analyticsHandler "github.com/aria-finance/analytics/internal/http/analytics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	analyticsService := analytics.NewService(store.New(db))
	analyticsH := analyticsHandler.NewHandler(analyticsService)

	router := ariaHttp.New(analyticsH, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
