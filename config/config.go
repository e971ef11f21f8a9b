package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string // "production" disables the Ethereal preview transport
	FrontendURL string
	// Primary SMTP transport
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	// Destination override; falls back to the SMTP login address when unset
	ContactToEmail string
	// Gmail fallback transport (app password, not the account password)
	GmailUser        string
	GmailAppPassword string
	// OpenAI chat relay
	OpenAIAPIKey string
	OpenAIModel  string
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production deploys
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("APP_ENV", "development"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:       getEnv("EMAIL_SMTP_HOST", ""),
		SMTPPort:       getEnvInt("EMAIL_SMTP_PORT", 587),
		SMTPUser:       getEnv("EMAIL_SMTP_USER", ""),
		SMTPPassword:   getEnv("EMAIL_SMTP_PASS", ""),
		ContactToEmail: getEnv("CONTACT_TO_EMAIL", ""),
		// Gmail Configuration
		GmailUser:        getEnv("GMAIL_USER", ""),
		GmailAppPassword: getEnv("GMAIL_APP_PASSWORD", ""),
		// OpenAI Configuration
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 20),
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
// The preview mailbox transport must never activate when this is true.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ContactTo returns the contact destination address. An explicit
// CONTACT_TO_EMAIL always wins; otherwise mail goes to the SMTP login
// address, which every provider accepts as a recipient of its own account.
func (c *Config) ContactTo() string {
	if c.ContactToEmail != "" {
		return c.ContactToEmail
	}
	return c.SMTPUser
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
