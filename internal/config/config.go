package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	// SeedDemoData inserts the fixed demo accounts at startup. Defaults on in
	// development, off everywhere else, so production credential stores never
	// pick up fixture users by accident.
	SeedDemoData bool

	LoginRateLimit  int
	LoginRateWindow time.Duration

	StatsCacheTTL time.Duration

	CloudinaryUploadFolder string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "urbancare"),
	}

	cfg.SeedDemoData = getEnvBool("SEED_DEMO_DATA", cfg.AppEnv == "development")

	var err error
	cfg.LoginRateLimit, err = getEnvInt("LOGIN_RATE_LIMIT", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}
	cfg.LoginRateWindow, err = getEnvDuration("LOGIN_RATE_WINDOW", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_WINDOW: %w", err)
	}
	cfg.StatsCacheTTL, err = getEnvDuration("STATS_CACHE_TTL", "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	return time.ParseDuration(getEnv(key, fallback))
}
