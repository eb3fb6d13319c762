package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port               string
	LogLevel           string
	DB                 DBConfig
	Auth               AuthConfig
	ProjectID          string
	CORSAllowedOrigins []string
	// StrictPassportRefs makes player create/update validate passport ids
	// the same way the association manager does.
	StrictPassportRefs bool
}

type DBConfig struct {
	Name          string
	MigrationsDir string
	MaxOpenConns  int
	Turso         TursoConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminPasswordHash string
}
