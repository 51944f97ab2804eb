package config

import (
	"fmt"
	"os"
)

const DefaultPositionsFeedURL = "https://ibillboard.com/api/positions"

// Config holds all settings read from the environment. Main calls
// godotenv.Load before Load, so a local .env works in development.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	HTTP     HTTPConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string // empty disables caching
}

type AuthConfig struct {
	JWTSecret string
}

type HTTPConfig struct {
	Port string
}

type SeedConfig struct {
	PositionsFeedURL string
}

// Load reads configuration from environment variables. JWT_SECRET has no
// safe default and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "empdir"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		HTTP: HTTPConfig{
			Port: getEnv("PORT", "3000"),
		},
		Seed: SeedConfig{
			PositionsFeedURL: getEnv("POSITIONS_FEED_URL", DefaultPositionsFeedURL),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
