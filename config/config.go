package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Environment string
	ServerPort  string
	Store       string
	SeedData    bool
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	// JWTSecret enables bearer-token authentication on /api when set.
	JWTSecret string
}

func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA: %w", err)
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8000"),
		Store:       strings.ToLower(getEnv("STORE", StorePostgres)),
		SeedData:    seed,
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      dbPort,
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "attendance"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	switch cfg.Store {
	case StorePostgres:
		if cfg.DBPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE %q, want %s or %s", cfg.Store, StorePostgres, StoreMemory)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
