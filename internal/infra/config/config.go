package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	APIToken       string
	BotToken       string
	ChatID         int64
	Endpoint       string
	PollSpec       string // Cron spec for the poll cadence
	RequestTimeout time.Duration
	Lookback       time.Duration // How far back the first poll window starts
	WindowPolicy   string
	LogLevel       string
	Environment    string
	SentryDSN      string
}

// MissingConfigError lists every required environment variable that is unset.
// The startup check reports all of them at once rather than the first one hit.
type MissingConfigError struct {
	Vars []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Vars, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var missing []string

	cfg.APIToken = os.Getenv("API_TOKEN")
	if cfg.APIToken == "" {
		missing = append(missing, "API_TOKEN")
	}

	cfg.BotToken = os.Getenv("BOT_TOKEN")
	if cfg.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}

	chatIDStr := os.Getenv("CHAT_ID")
	if chatIDStr == "" {
		missing = append(missing, "CHAT_ID")
	}

	if len(missing) > 0 {
		return nil, &MissingConfigError{Vars: missing}
	}

	var err error
	cfg.ChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_ID: %w", err)
	}

	cfg.Endpoint = os.Getenv("ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	}

	cfg.PollSpec = os.Getenv("POLL_SPEC")
	if cfg.PollSpec == "" {
		cfg.PollSpec = "@every 10m" // Default: poll every 10 minutes
	}

	cfg.RequestTimeout = 30 * time.Second // Default request timeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		cfg.RequestTimeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
	}

	if v := os.Getenv("LOOKBACK"); v != "" {
		cfg.Lookback, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOOKBACK: %w", err)
		}
	}

	cfg.WindowPolicy = strings.ToLower(os.Getenv("WINDOW_POLICY"))
	if cfg.WindowPolicy == "" {
		cfg.WindowPolicy = "advance" // Default window policy
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.SentryDSN = os.Getenv("SENTRY_DSN")

	return cfg, nil
}
