package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fund-selector/config"
	httpLayer "fund-selector/http"
	"fund-selector/logger"
	"fund-selector/repository"
	"fund-selector/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var profileRepo repository.ProfileRepository = repository.NewProfileRepositoryMemory()
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewProfileRepositoryPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		profileRepo = pg
		log.Info().Msg("Using postgres profile store")
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, fund search cache disabled until it recovers")
		}
		defer redisCache.Close()
		cache = redisCache
	}

	metrics := httpLayer.NewMetrics()

	profileService := service.NewProfileService(profileRepo, service.NewTemplateTable(), log)
	profileService.SetObserver(metrics)

	fundSearchService := service.NewFundSearchService(service.FundSearchConfig{
		URL:      cfg.FundSearchURL,
		Timeout:  cfg.FundSearchTimeout,
		CacheTTL: cfg.FundCacheTTL,
	}, cache, log)
	fundSearchService.SetObserver(metrics)
	if !fundSearchService.Enabled() {
		log.Info().Msg("FUND_SEARCH_URL not set, fund search disabled")
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Profiles:      profileService,
		Funds:         fundSearchService,
		Metrics:       metrics,
		Limiter:       rateLimiter,
		EnrichTimeout: cfg.FundSearchTimeout,
		Log:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.FundSearchTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Info().Msg("Shutting down server...")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
	return nil
}
