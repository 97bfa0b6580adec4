package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ProjectMovies/internal/client"
	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/metrics"
	"github.com/Belphemur/ProjectMovies/internal/server"
	"github.com/Belphemur/ProjectMovies/internal/views/widgets"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Info().
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Str("tmdb_language", cfg.TMDB.Language).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	tmdb := client.NewClient(cfg)
	defer func() { _ = tmdb.Close() }()

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(tmdb, cfg, widgets.New(cfg.TMDB.ImageBaseURL), time.Now)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to serve HTTP")
		return
	}

	logger.Info().Msg("Server stopped gracefully")
}
