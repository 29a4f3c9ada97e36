package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("PANTRYCART_SERVER_PORT")
		os.Unsetenv("PANTRYCART_SERVER_ENVIRONMENT")
		os.Unsetenv("PANTRYCART_REGISTRY_TYPE")
		os.Unsetenv("PANTRYCART_REGISTRY_REDIS_ADDR")
		os.Unsetenv("PANTRYCART_REGISTRY_POSTGRES_DSN")
		os.Unsetenv("PANTRYCART_MATCHING_MIN_CONFIDENCE")
		os.Unsetenv("PANTRYCART_MATCHING_FUZZY_EDIT_DISTANCE")
		os.Unsetenv("PANTRYCART_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Registry.Type != "memory" {
			t.Errorf("Registry.Type = %s, want memory", cfg.Registry.Type)
		}
		if !cfg.Registry.Seed {
			t.Error("Registry.Seed = false, want true")
		}
		if cfg.Matching.MinConfidence != 0.3 {
			t.Errorf("Matching.MinConfidence = %v, want 0.3", cfg.Matching.MinConfidence)
		}
		if cfg.Matching.FuzzyEditDistance != 2 {
			t.Errorf("Matching.FuzzyEditDistance = %d, want 2", cfg.Matching.FuzzyEditDistance)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRYCART_SERVER_PORT", "9090")
		os.Setenv("PANTRYCART_SERVER_ENVIRONMENT", "production")
		os.Setenv("PANTRYCART_REGISTRY_TYPE", "redis")
		os.Setenv("PANTRYCART_REGISTRY_REDIS_ADDR", "redis:6379")
		os.Setenv("PANTRYCART_MATCHING_MIN_CONFIDENCE", "0.5")
		os.Setenv("PANTRYCART_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Registry.Type != "redis" {
			t.Errorf("Registry.Type = %s, want redis", cfg.Registry.Type)
		}
		if cfg.Registry.RedisAddr != "redis:6379" {
			t.Errorf("Registry.RedisAddr = %s, want redis:6379", cfg.Registry.RedisAddr)
		}
		if cfg.Matching.MinConfidence != 0.5 {
			t.Errorf("Matching.MinConfidence = %v, want 0.5", cfg.Matching.MinConfidence)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation for invalid registry type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRYCART_REGISTRY_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid registry type")
		}
	})

	t.Run("fails validation when postgres DSN missing for postgres registry", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRYCART_REGISTRY_TYPE", "postgres")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Postgres DSN")
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Registry: RegistryConfig{Type: "memory"},
			Matching: MatchingConfig{MinConfidence: 0.3, FuzzyEditDistance: 2},
		}
	}

	t.Run("validates successfully with defaults", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for invalid registry type", func(t *testing.T) {
		cfg := base()
		cfg.Registry.Type = "cassette-tape"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid registry type")
		}
	})

	t.Run("fails for redis registry without address", func(t *testing.T) {
		cfg := base()
		cfg.Registry.Type = "redis"
		cfg.Registry.RedisAddr = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for redis without address")
		}
	})

	t.Run("fails for out-of-range confidence", func(t *testing.T) {
		cfg := base()
		cfg.Matching.MinConfidence = 1.5
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for confidence > 1")
		}
	})

	t.Run("fails for negative edit distance", func(t *testing.T) {
		cfg := base()
		cfg.Matching.FuzzyEditDistance = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative edit distance")
		}
	})
}
