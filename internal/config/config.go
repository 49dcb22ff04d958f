package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	AppEnv        string
	AppBaseURL    string
	ResetTokenTTL time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/contacts?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		AppEnv:        getEnv("APP_ENV", "development"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		ResetTokenTTL: time.Duration(getEnvInt("RESET_TOKEN_TTL_MINUTES", 60)) * time.Minute,
	}
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
