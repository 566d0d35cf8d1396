// Package config provides configuration management for the pizzeria order service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Cart   CartConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// StoreConfig holds the pizzeria's identity: where order messages are sent.
type StoreConfig struct {
	Name        string
	Phone       string
	CountryCode string
}

// CartConfig holds cart session store configuration.
type CartConfig struct {
	Capacity   int
	SessionTTL time.Duration
}

// Load creates a Config from environment variables. A .env file in the
// working directory is loaded first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Store: StoreConfig{
			Name:        getEnv("STORE_NAME", "Pizza Walter et Flo"),
			Phone:       getEnv("STORE_PHONE", "06 99 58 96 53"),
			CountryCode: getEnv("STORE_COUNTRY_CODE", "33"),
		},
		Cart: CartConfig{
			Capacity:   getEnvInt("CART_STORE_CAPACITY", 10000),
			SessionTTL: getEnvDuration("CART_SESSION_TTL", 2*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
