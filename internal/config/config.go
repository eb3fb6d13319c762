package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultMaxOpenConns  = 10
	defaultMigrationsDir = "./migrations"
	defaultTokenTTL      = 24 * time.Hour
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	return Config{
		Port:     getEnvDefault("PORT", defaultPort),
		LogLevel: getEnvDefault("LOG_LEVEL", "info"),
		DB: DBConfig{
			Name:          getEnvDefault("DB_NAME", "roster.db"),
			MigrationsDir: getEnvDefault("MIGRATIONS_DIR", defaultMigrationsDir),
			MaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
			Turso: TursoConfig{
				PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
				AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
			},
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET"),
			TokenTTL:          getEnvDuration("JWT_EXPIRES_IN", defaultTokenTTL),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH"),
		},
		ProjectID:          os.Getenv("GCP_PROJECT"),
		CORSAllowedOrigins: splitList(getEnvDefault("CORS_ALLOWED_ORIGINS", "*")),
		StrictPassportRefs: getEnvBool("STRICT_PASSPORT_REFS", true),
	}
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Warn("Ignoring invalid integer environment variable", "key", key, "value", raw)
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Warn("Ignoring invalid duration environment variable", "key", key, "value", raw)
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn("Ignoring invalid boolean environment variable", "key", key, "value", raw)
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
