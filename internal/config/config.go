package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port     string
	Env      string
	LogLevel string

	// Database configuration
	DBType            string // mongo, mysql, postgres, sqlite, sqlserver
	MongoURI          string
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// HTTP boundary
	CORSAllowOrigins  string
	RateLimitRate     float64 // tokens per second per client
	RateLimitCapacity int64

	// Background jobs
	OrphanSweepInterval time.Duration // 0 disables the sweep
}

var supportedDBTypes = map[string]bool{
	"mongo":      true,
	"mongodb":    true,
	"mysql":      true,
	"mariadb":    true,
	"postgres":   true,
	"postgresql": true,
	"sqlite":     true,
	"sqlserver":  true,
	"mssql":      true,
}

// Load loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := LoadEnvFile(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DBType:              strings.ToLower(getEnv("DB_TYPE", "mongo")),
		MongoURI:            getEnv("MONGO_URI", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", ""),
		DBDatabase:          getEnv("DB_DATABASE", "medicamentos_db"),
		DBUser:              getEnv("DB_USER", ""),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:   getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		CORSAllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),
		RateLimitRate:       getEnvAsFloat("RATE_LIMIT_RATE", 20),
		RateLimitCapacity:   int64(getEnvAsInt("RATE_LIMIT_CAPACITY", 200)),
		OrphanSweepInterval: getEnvAsDuration("ORPHAN_SWEEP_INTERVAL", time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile applies the variables of an env file without overriding the process environment.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return godotenv.Load(path)
}

// Validate checks the combination of settings for the selected backend
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if !supportedDBTypes[c.DBType] {
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DBType)
	}
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}

	switch {
	case c.IsMongo():
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
	case c.DBType == "sqlite":
		// DB_DATABASE is the file path
	default:
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
	}

	if c.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be positive")
	}
	if c.RateLimitRate <= 0 || c.RateLimitCapacity < 1 {
		return fmt.Errorf("RATE_LIMIT_RATE and RATE_LIMIT_CAPACITY must be positive")
	}
	if c.OrphanSweepInterval < 0 {
		return fmt.Errorf("ORPHAN_SWEEP_INTERVAL cannot be negative")
	}

	return nil
}

// IsMongo reports whether the document store backend is selected
func (c *Config) IsMongo() bool {
	return c.DBType == "mongo" || c.DBType == "mongodb"
}

// IsProduction reports whether ENV selects production behaviour (JSON logs)
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("90s", "1h") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
