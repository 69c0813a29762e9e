package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultDatabaseDSN = "portfolio.db"
	defaultJWTTTL      = "24h"
)

// StorageConfig holds the S3-compatible object-storage credentials.
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string // overrides the derived object URL prefix when set
}

// MailConfig holds the external email API settings plus the owner
// address that receives contact-form notifications.
type MailConfig struct {
	APIBaseURL string
	APIKey     string
	OwnerEmail string
	OwnerName  string
}

type Config struct {
	HTTPAddr    string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	Storage     StorageConfig
	Mail        MailConfig
}

// Load reads configuration from the environment. A .env file is picked
// up when present but is not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Storage: StorageConfig{
			Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
			AccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:        getEnv("STORAGE_BUCKET", "portfolio-files"),
			PublicBaseURL: os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		},
		Mail: MailConfig{
			APIBaseURL: os.Getenv("EMAIL_API_BASE_URL"),
			APIKey:     os.Getenv("EMAIL_API_KEY"),
			OwnerEmail: os.Getenv("OWNER_EMAIL"),
			OwnerName:  getEnv("OWNER_NAME", "Portfolio Owner"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	useSSL, err := strconv.ParseBool(os.Getenv("STORAGE_USE_SSL"))
	if err != nil {
		useSSL = false
	}
	cfg.Storage.UseSSL = useSSL

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
