package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// KV backends understood by Load.
const (
	KVMemory   = "memory"
	KVPostgres = "postgres"
	KVRedis    = "redis"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	KVBackend     string
	SeedFile      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	AuthDelay       time.Duration
	SocialAuthDelay time.Duration
	DeviceIdleTTL   time.Duration

	CallbackURL        string
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubSecret       string
	MicrosoftClientID  string
	MicrosoftSecret    string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		SeedFile:      os.Getenv("SEED_FILE"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "after42"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24*30),

		AuthDelay:       time.Duration(getEnvInt("AUTH_DELAY_MS", 1000)) * time.Millisecond,
		SocialAuthDelay: time.Duration(getEnvInt("SOCIAL_AUTH_DELAY_MS", 1500)) * time.Millisecond,
		DeviceIdleTTL:   time.Duration(getEnvInt("DEVICE_IDLE_MINUTES", 120)) * time.Minute,

		CallbackURL:        getEnv("CALLBACK_URL", "http://localhost:8080/api/v1/session/social"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubSecret:       os.Getenv("GITHUB_CLIENT_SECRET"),
		MicrosoftClientID:  os.Getenv("MICROSOFT_CLIENT_ID"),
		MicrosoftSecret:    os.Getenv("MICROSOFT_CLIENT_SECRET"),
	}
	cfg.KVBackend = kvBackend(os.Getenv("KV_BACKEND"), cfg)
	return cfg
}

// kvBackend picks the explicit backend, or infers one from the configured URLs.
func kvBackend(explicit string, cfg Config) string {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case KVMemory:
		return KVMemory
	case KVPostgres:
		return KVPostgres
	case KVRedis:
		return KVRedis
	}
	if cfg.RedisURL != "" {
		return KVRedis
	}
	if cfg.DatabaseURL != "" {
		return KVPostgres
	}
	return KVMemory
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
