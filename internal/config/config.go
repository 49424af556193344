// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultJWTSecret is the signing key used when JWT_SECRET is unset. It is
// public, so tokens signed with it can be forged by anyone.
const DefaultJWTSecret = "dev-secret-change-me"

// Config holds all configuration for the server.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Auth      AuthConfig
	Log       LogConfig
	Cafe      CafeConfig
	Messaging MessagingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type StorageConfig struct {
	Driver      string
	DBPath      string
	DatabaseURL string
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	AdminUsername  string
	AdminPassword  string
	MinPasswordLen int
}

type LogConfig struct {
	Level  string
	Format string
}

type CafeConfig struct {
	TableCount int
}

type MessagingConfig struct {
	// RabbitMQURL is empty when sale events are not published.
	RabbitMQURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
			DBPath:      getEnv("DB_PATH", "./data/adisyon.db"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTL:       getEnvAsDuration("TOKEN_TTL", 12*time.Hour),
			AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:  getEnv("ADMIN_PASSWORD", "123"),
			MinPasswordLen: getEnvAsInt("MIN_PASSWORD_LEN", 3),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Cafe: CafeConfig{
			TableCount: getEnvAsInt("TABLE_COUNT", 32),
		},
		Messaging: MessagingConfig{
			RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be sqlite or postgres)", c.Storage.Driver)
	}

	if c.Cafe.TableCount < 1 {
		return fmt.Errorf("TABLE_COUNT must be at least 1, got %d", c.Cafe.TableCount)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Auth.MinPasswordLen < 1 {
		return fmt.Errorf("MIN_PASSWORD_LEN must be at least 1")
	}
	if len(c.Auth.AdminPassword) < c.Auth.MinPasswordLen {
		return fmt.Errorf("ADMIN_PASSWORD is shorter than MIN_PASSWORD_LEN (%d)", c.Auth.MinPasswordLen)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Log.Format)
	}

	return nil
}

// InsecureJWTSecret reports whether tokens are signed with the built-in
// development secret.
func (c *Config) InsecureJWTSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
