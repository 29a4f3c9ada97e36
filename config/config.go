package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Registry  RegistryConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RegistryConfig holds ingredient registry storage configuration
type RegistryConfig struct {
	Type          string `mapstructure:"type"` // "memory", "redis" or "postgres"
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
	Seed          bool   `mapstructure:"seed"`
}

// MatchingConfig holds parsing and canonicalization configuration
type MatchingConfig struct {
	MinConfidence     float64 `mapstructure:"min_confidence"`
	EnableFuzzy       bool    `mapstructure:"enable_fuzzy"`
	FuzzyEditDistance int     `mapstructure:"fuzzy_edit_distance"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrycart/")

	v.SetEnvPrefix("PANTRYCART")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("registry.type", "memory")
	v.SetDefault("registry.redis_addr", "localhost:6379")
	v.SetDefault("registry.redis_db", 0)
	v.SetDefault("registry.seed", true)

	v.SetDefault("matching.min_confidence", 0.3)
	v.SetDefault("matching.enable_fuzzy", true)
	v.SetDefault("matching.fuzzy_edit_distance", 2)

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Registry.Type {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("registry type must be 'memory', 'redis' or 'postgres', got: %s", config.Registry.Type)
	}

	if config.Registry.Type == "redis" && config.Registry.RedisAddr == "" {
		return fmt.Errorf("Redis address is required when registry type is 'redis'")
	}
	if config.Registry.Type == "postgres" && config.Registry.PostgresDSN == "" {
		return fmt.Errorf("Postgres DSN is required when registry type is 'postgres' (set PANTRYCART_REGISTRY_POSTGRES_DSN)")
	}

	if config.Matching.MinConfidence < 0 || config.Matching.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be between 0 and 1, got: %v", config.Matching.MinConfidence)
	}
	if config.Matching.FuzzyEditDistance < 0 {
		return fmt.Errorf("fuzzy edit distance must be non-negative, got: %d", config.Matching.FuzzyEditDistance)
	}

	return nil
}
