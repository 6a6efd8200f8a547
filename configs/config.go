package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Password reset
	ResetTokenTTL time.Duration
	FrontendURL   string

	// Email (SES)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	SenderEmail        string

	// First-boot admin
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	CookieSecure bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "store.db"),
		Port:     getEnv("PORT", "8000"),

		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		AccessTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTTL: getEnvDuration("REFRESH_TOKEN_TTL", time.Hour),

		ResetTokenTTL: getEnvDuration("RESET_TOKEN_TTL", time.Hour),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SenderEmail:        os.Getenv("SENDER_EMAIL"),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		CookieSecure: getEnvBool("COOKIE_SECURE", true),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid duration for %s, using default", key)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
