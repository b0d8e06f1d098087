package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	HTTPAddr       string
	StorageDriver  string // "memory" yoki "sqlite"
	DBPath         string
	ChatDBPath     string
	MaxContextSize int
	MediaDir       string
	NodeID         int64 // snowflake node, 0..1023

	GeminiAPIKey string
	GeminiModel  string

	SuggestionAPIURL string
	SuggestionAPIKey string

	TelegramToken string
	AdminChatID   int64

	AdminUsername string
	AdminPassword string

	OrderPollInterval time.Duration
	SessionTTL        time.Duration

	LogLevel string
	LogMode  string
	LogFile  string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		StorageDriver:     getEnv("STORAGE_DRIVER", "sqlite"),
		DBPath:            getEnv("DB_PATH", "data/storefront.db"),
		ChatDBPath:        getEnv("CHAT_DB_PATH", "data/chat.db"),
		MaxContextSize:    20, // Default qiymat
		MediaDir:          getEnv("MEDIA_DIR", "data/media"),
		NodeID:            1,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SuggestionAPIURL:  os.Getenv("SUGGESTION_API_URL"),
		SuggestionAPIKey:  os.Getenv("SUGGESTION_API_KEY"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		OrderPollInterval: 30 * time.Second,
		SessionTTL:        24 * time.Hour,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogMode:           getEnv("LOG_MODE", "development"),
		LogFile:           os.Getenv("LOG_FILE"),
	}

	if raw := os.Getenv("MAX_CONTEXT_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_CONTEXT_SIZE is malformed: %q", raw)
		}
		config.MaxContextSize = parsed
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			config.AdminChatID = parsed
		} else {
			return nil, fmt.Errorf("ADMIN_CHAT_ID is malformed: %v", err)
		}
	}

	if raw := os.Getenv("NODE_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 || parsed > 1023 {
			return nil, fmt.Errorf("NODE_ID is malformed: %q", raw)
		}
		config.NodeID = parsed
	}

	var err error
	if config.OrderPollInterval, err = durationEnv("ORDER_POLL_INTERVAL", config.OrderPollInterval); err != nil {
		return nil, err
	}
	if config.SessionTTL, err = durationEnv("SESSION_TTL", config.SessionTTL); err != nil {
		return nil, err
	}

	// Validatsiya
	switch config.StorageDriver {
	case "memory", "sqlite":
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be memory or sqlite, got %q", config.StorageDriver)
	}
	if config.TelegramToken != "" && config.AdminChatID == 0 {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s is malformed: %q", key, raw)
	}
	return d, nil
}
