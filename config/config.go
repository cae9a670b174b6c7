package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Storage
	DataBackend string // memory, file, postgres, pgx or sqlite3
	DataDir     string
	DBUrl       string

	// Auth
	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	// HTTP
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	ShutdownTimeout    time.Duration

	Email EmailConfig
}

// EmailConfig holds email provider configuration.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	SESInsecureSkipTLS bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		DataBackend:        strings.ToLower(getEnv("DATA_BACKEND", "file")),
		DataDir:            getEnv("DATA_DIR", "data"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SessionTTL:         getDurationEnv("SESSION_TTL", 24*time.Hour),
		BcryptCost:         getIntEnv("BCRYPT_COST", 10),
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:       getFloatEnv("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		ShutdownTimeout:    getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		Email: EmailConfig{
			Provider:           strings.ToLower(getEnv("EMAIL_PROVIDER", "noop")),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           getEnv("EMAIL_FROM_NAME", "eventr"),
			SESRegion:          getEnv("AWS_SES_REGION", "us-east-1"),
			SESAccessKeyID:     os.Getenv("AWS_SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
			SESInsecureSkipTLS: getBoolEnv("AWS_SES_INSECURE_SKIP_VERIFY", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DataBackend {
	case "memory", "file":
	case "postgres", "pgx", "sqlite3":
		if c.DBUrl == "" {
			return fmt.Errorf("DATABASE_URL is required for DATA_BACKEND=%s", c.DataBackend)
		}
	default:
		return fmt.Errorf("unknown DATA_BACKEND %q", c.DataBackend)
	}
	if c.JWTSecret == "" {
		if c.Environment == "production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "dev-secret-change-me"
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
