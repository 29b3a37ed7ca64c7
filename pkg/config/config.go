package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Identity gateway modes selectable via IDENTITY_MODE.
const (
	IdentityModeJWT    = "jwt"
	IdentityModeGoTrue = "gotrue"
)

// Config holds all application configuration
type Config struct {
	Env      string
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Identity IdentityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the key-value store backend
type StoreConfig struct {
	Backend string
}

// DatabaseConfig holds Postgres configuration for the kv_store table
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// IdentityConfig holds identity gateway configuration
type IdentityConfig struct {
	Mode       string
	JWTSecret  string
	AuthURL    string
	ServiceKey string
}

// Load loads configuration from the environment. A local .env file is
// applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreBackendMemory),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "booking_platform"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Identity: IdentityConfig{
			Mode:       getEnv("IDENTITY_MODE", IdentityModeJWT),
			JWTSecret:  getEnv("IDENTITY_JWT_SECRET", "dev-secret"),
			AuthURL:    getEnv("IDENTITY_AUTH_URL", ""),
			ServiceKey: getEnv("IDENTITY_SERVICE_KEY", ""),
		},
	}, nil
}

// Addr returns the host:port the HTTP server binds to
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
