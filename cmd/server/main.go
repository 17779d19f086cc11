package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/galraemalrae/weathertravel/internal/adapter/openweather"
	"github.com/galraemalrae/weathertravel/internal/adapter/tourapi"
	"github.com/galraemalrae/weathertravel/internal/adapter/web"
	"github.com/galraemalrae/weathertravel/internal/config"
	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/observability"
	"github.com/galraemalrae/weathertravel/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := domain.Clock()

	if cfg.OpenWeatherAPIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY not set, weather requests will fail")
	}
	if cfg.TourAPIKey == "" {
		logger.Warn("TOURAPI_KEY not set, event requests will fail")
	}

	weatherClient := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherTimeout, logger, metrics)
	weather := openweather.NewCachedClient(weatherClient, cfg.CacheSize, cfg.CacheTTL, clock, metrics)
	logger.Info("weather cache enabled", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)

	events := tourapi.NewClient(cfg.TourAPIKey, cfg.TourAPITimeout, cfg.EventRows, logger, metrics, clock)

	svc := service.New(weather, events, logger, metrics)
	srv := web.NewServer(cfg.HTTPAddr, svc, cfg.DefaultRegion, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
