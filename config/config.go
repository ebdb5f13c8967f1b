package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Messaging MessagingConfig
	Referral  ReferralConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type MessagingConfig struct {
	DefaultPlatform string
	// MaxBulkRecipients bounds a single bulk-message call.
	MaxBulkRecipients int
	// TemplateOverrides replaces the content of a default message template
	// by template id. Merged with the default table at startup.
	TemplateOverrides map[string]string
}

type ReferralConfig struct {
	// LinkBaseURL is the public base for generated referral links.
	LinkBaseURL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8090"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "growthpro:growthpro@tcp(localhost:3306)/growthpro?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Messaging: MessagingConfig{
			DefaultPlatform:   getenv("MESSAGING_DEFAULT_PLATFORM", "whatsapp"),
			MaxBulkRecipients: getenvInt("MESSAGING_MAX_BULK_RECIPIENTS", 200),
		},
		Referral: ReferralConfig{
			LinkBaseURL: getenv("REFERRAL_LINK_BASE_URL", "https://growthpro.app"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
