package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pantrycart/backend/config"
	httpDelivery "github.com/pantrycart/backend/internal/delivery/http"
	"github.com/pantrycart/backend/internal/domain"
	"github.com/pantrycart/backend/internal/infrastructure/registry"
	"github.com/pantrycart/backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting pantrycart backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("registry", cfg.Registry.Type),
	)

	reg, closeReg, err := newRegistry(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize ingredient registry", zap.Error(err))
	}
	defer closeReg()

	if cfg.Registry.Seed {
		seed := registry.DefaultIngredients()
		if err := seedRegistry(reg, seed); err != nil {
			logger.Fatal("failed to seed ingredient registry", zap.Error(err))
		}
		logger.Info("seeded ingredient registry", zap.Int("entries", len(seed)))
	}

	shopping := usecase.NewShoppingService(reg, usecase.ShoppingServiceConfig{
		MinConfidence:       cfg.Matching.MinConfidence,
		EnableFuzzyMatching: cfg.Matching.EnableFuzzy,
		FuzzyEditDistance:   cfg.Matching.FuzzyEditDistance,
	}, logger)

	handler := httpDelivery.NewHandler(shopping, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newRegistry builds the configured registry backend. The returned close
// function is a no-op for the in-memory backend.
func newRegistry(cfg *config.Config, logger *zap.Logger) (domain.IngredientRegistry, func(), error) {
	switch cfg.Registry.Type {
	case "redis":
		r, err := registry.NewRedisRegistry(cfg.Registry.RedisAddr, cfg.Registry.RedisPassword, cfg.Registry.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	case "postgres":
		r, err := registry.NewPostgresRegistry(cfg.Registry.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	default:
		return registry.NewMemoryRegistry(), func() {}, nil
	}
}

func seedRegistry(reg domain.IngredientRegistry, entries []domain.CanonicalIngredient) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for i := range entries {
		if _, _, err := reg.InsertIfAbsent(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}
