package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env        string
	ServerPort string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	TokenTTL  time.Duration

	StripeSecretKey string
	Currency        string

	ClinicTimezone  string
	CatalogCacheTTL time.Duration
	RequestTimeout  time.Duration

	CORSAllowedOrigins []string

	LogLevel string
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "5000"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "doctor-portal"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("ACCESS_TOKEN_SECRET", "changeme"),
		TokenTTL:  getDuration("ACCESS_TOKEN_TTL", time.Hour),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		Currency:        getEnv("PAYMENT_CURRENCY", "usd"),

		ClinicTimezone:  getEnv("CLINIC_TIMEZONE", "UTC"),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 15*time.Second),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDuration accepts either a Go duration string ("30s") or plain seconds.
func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

// getList splits a comma-separated env value, dropping empty entries.
func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
