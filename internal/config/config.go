package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects everything the server reads from the environment.
// godotenv loads the .env file in main before this runs.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret     string
	TokenValidity time.Duration

	// SMTP settings for outbound notification mail
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	GeminiAPIKey string

	OTPValidity time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobjournal port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-for-development"),
		TokenValidity: 24 * time.Hour,
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("ADMIN_EMAIL"),
		SMTPPass:      os.Getenv("ADMIN_EMAIL_PASSWORD"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OTPValidity:   5 * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
