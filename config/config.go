package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"rishabgems/invoicegen/utils"
)

type Config struct {
	Port          string
	LogLevel      string
	LoginPinHash  string
	JWTSecret     string
	SessionTTL    time.Duration
	BillPrefix    string
	BillerName    string
	CompanyName   string
	DueDays       int
	ChromeTimeout time.Duration
	R2            utils.R2Settings

	NewRelicLicense string
	NewRelicAppName string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LoginPinHash:  os.Getenv("LOGIN_PIN_HASH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    getDuration("SESSION_TTL", 12*time.Hour),
		BillPrefix:    getEnv("BILL_PREFIX", "RG"),
		BillerName:    getEnv("BILLER_NAME", "Mr. Manish Dugar"),
		CompanyName:   getEnv("COMPANY_NAME", "Rishab Gems"),
		DueDays:       getInt("DUE_DAYS", 7),
		ChromeTimeout: getDuration("CHROME_TIMEOUT", 30*time.Second),
		R2: utils.R2Settings{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			Bucket:          os.Getenv("R2_BUCKET"),
			PublicURL:       os.Getenv("R2_PUBLIC_URL"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		},
		NewRelicLicense: os.Getenv("NEW_RELIC_LICENSE_KEY"),
		NewRelicAppName: getEnv("NEW_RELIC_APP_NAME", "Invoice Generator"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring malformed duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
