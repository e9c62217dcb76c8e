package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Mail transport configuration
	// MailProvider selects the outbound transport: "gmail" sends through the
	// configured Gmail account, "mock" records messages instead (development).
	MailProvider     string
	SMTPHost         string
	SMTPPort         int
	GmailUser        string
	GmailAppPassword string

	// Optional override recipient for lead notifications.
	// Falls back to GmailUser when empty.
	ContactToEmail string

	// CORS allow-list for the contact form endpoint.
	// When empty, a built-in list of known frontend origins is used.
	AllowedOrigins []string

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 3001),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// SMTP defaults for Gmail submission
		MailProvider:     getEnv("MAIL_PROVIDER", "gmail"),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		GmailUser:        getEnv("GMAIL_USER", ""),
		GmailAppPassword: getEnv("GMAIL_APP_PASSWORD", ""),
		ContactToEmail:   getEnv("CONTACT_TO_EMAIL", ""),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// Parse allowed origins from comma-separated environment variable
	originsStr := getEnv("ALLOWED_ORIGINS", "")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	// Validate mail provider configuration. Missing credentials are NOT a
	// startup error: submissions fail per-request with a configuration
	// message until the credentials are supplied.
	if cfg.MailProvider != "gmail" && cfg.MailProvider != "mock" {
		return nil, fmt.Errorf("MAIL_PROVIDER must be either 'gmail' or 'mock', got: %s", cfg.MailProvider)
	}

	return cfg, nil
}

// MailConfigured reports whether the sender identity and its transport
// credential are both present.
func (c *Config) MailConfigured() bool {
	return c.GmailUser != "" && c.GmailAppPassword != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
