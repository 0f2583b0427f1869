package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/esmael/chapapay/internal/adapter/http"
	"github.com/esmael/chapapay/internal/adapter/http/handler"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/adapter/repository/kv"
	redisRepo "github.com/esmael/chapapay/internal/adapter/repository/redis"
	"github.com/esmael/chapapay/internal/infrastructure/auth"
	"github.com/esmael/chapapay/internal/infrastructure/config"
	"github.com/esmael/chapapay/internal/infrastructure/logger"
	"github.com/esmael/chapapay/internal/infrastructure/metrics"
	"github.com/esmael/chapapay/internal/storage"
	"github.com/esmael/chapapay/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Select the backing store
	var store storage.Store
	switch cfg.StoreBackend {
	case "redis":
		client, err := redisRepo.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		store = redisRepo.NewStore(client)
		log.Info().Msg("connected to redis")
	case "memory":
		store = storage.NewMemoryStore()
		log.Info().Msg("using in-memory store")
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	// Initialize repositories
	userRepo := kv.NewUserRepository(store)
	adminRepo := kv.NewAdminRepository(store)
	txnRepo := kv.NewTransactionRepository(store)
	statsRepo := kv.NewStatsRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	profileRepo := kv.NewProfileRepository(store)

	// Initialize use cases
	latency := usecase.NewLatency(cfg.LatencyMin, cfg.LatencyMax)
	authUC := usecase.NewAuthUseCase(userRepo, adminRepo, sessionRepo, latency, log)
	accountUC := usecase.NewAccountUseCase(userRepo, adminRepo, latency, log)
	txnUC := usecase.NewTransactionUseCase(txnRepo, latency, log)
	statsUC := usecase.NewStatsUseCase(userRepo, adminRepo, txnRepo, statsRepo, latency, log)
	seedUC := usecase.NewSeedUseCase(userRepo, adminRepo, txnRepo, statsRepo, cfg.SeedRandom, log)
	profileUC := usecase.NewProfileUseCase(profileRepo, latency, log)

	// Seed the store on first boot and resume a persisted session
	if err := seedUC.EnsureSeeded(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}
	if err := authUC.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to restore session")
	}

	// Initialize handlers
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)
	m := metrics.New()
	authHandler := handler.NewAuthHandler(authUC, tokens, m)
	accountHandler := handler.NewAccountHandler(accountUC)
	txnHandler := handler.NewTransactionHandler(txnUC, m)
	statsHandler := handler.NewStatsHandler(statsUC, seedUC, m)
	profileHandler := handler.NewProfileHandler(profileUC)
	healthHandler := handler.NewHealthHandler(store)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        authHandler,
		AccountHandler:     accountHandler,
		TransactionHandler: txnHandler,
		StatsHandler:       statsHandler,
		ProfileHandler:     profileHandler,
		HealthHandler:      healthHandler,
		Tokens:             tokens,
		Logger:             log,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
