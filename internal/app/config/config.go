// Package config loads the process-wide configuration once at startup.
// Nothing outside this package reads the environment after Load returns;
// every component receives its settings by injection.
package config

import (
	"os"
	"strconv"
	"time"
)

// Email provider selection values.
const (
	EmailProviderSMTP     = "smtp"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderNone     = "none"
)

// DBConfig holds the database connection settings.
type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// RedisConfig holds the optional Redis cache settings. An empty Host disables
// the cache entirely.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	CacheTTL time.Duration
}

// EmailConfig holds the email delivery settings.
type EmailConfig struct {
	Provider       string
	From           string
	FromName       string
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	// Timeout bounds a single outbound send so a slow provider cannot stall
	// the HTTP response.
	Timeout time.Duration
}

// Config is the immutable process configuration, built once in main and
// injected into every component that needs a piece of it.
type Config struct {
	Addr string

	DB    DBConfig
	Redis RedisConfig
	Email EmailConfig

	// JWTSecret signs bearer tokens. Rotating it invalidates all previously
	// issued tokens; there is no key versioning.
	JWTSecret string

	// TokenTTL is the bearer-token lifetime.
	TokenTTL time.Duration

	// ResetTokenTTL is the password-reset window.
	ResetTokenTTL time.Duration

	// PublicBaseURL is the frontend origin used to build reset links.
	PublicBaseURL string
}

// Load builds the configuration from the environment, applying defaults
// suitable for local development.
func Load() Config {
	return Config{
		Addr: ":" + getenv("PORT", "4000"),
		DB: DBConfig{
			Host:          getenv("DB_HOST", "localhost"),
			Port:          getenv("DB_PORT", "5432"),
			User:          getenv("DB_USER", "taskmanager"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          getenv("DB_NAME", "taskmanager"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			CacheTTL: getduration("TASK_CACHE_TTL", 5*time.Minute),
		},
		Email: EmailConfig{
			Provider:       getenv("EMAIL_PROVIDER", EmailProviderNone),
			From:           getenv("EMAIL_FROM", "noreply@taskmanager.local"),
			FromName:       getenv("EMAIL_FROM_NAME", "Task Manager"),
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			SMTPHost:       os.Getenv("SMTP_HOST"),
			SMTPPort:       getint("SMTP_PORT", 587),
			SMTPUser:       os.Getenv("SMTP_USER"),
			SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
			Timeout:        getduration("EMAIL_TIMEOUT", 10*time.Second),
		},
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getduration("TOKEN_TTL", 7*24*time.Hour),
		ResetTokenTTL: getduration("RESET_TOKEN_TTL", 10*time.Minute),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
