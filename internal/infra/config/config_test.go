package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("API_TOKEN", "practicum-token")
	t.Setenv("BOT_TOKEN", "123456:telegram-token")
	t.Setenv("CHAT_ID", "987654321")
}

// clearOptionalEnv pins every optional variable to empty so ambient
// environment cannot leak into assertions about defaults.
func clearOptionalEnv(t *testing.T) {
	for _, k := range []string{
		"ENDPOINT", "POLL_SPEC", "REQUEST_TIMEOUT", "LOOKBACK",
		"WINDOW_POLICY", "LOG_LEVEL", "ENVIRONMENT", "SENTRY_DSN",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicum-token", cfg.APIToken)
	assert.Equal(t, "123456:telegram-token", cfg.BotToken)
	assert.Equal(t, int64(987654321), cfg.ChatID)
	assert.Equal(t, "https://practicum.yandex.ru/api/user_api/homework_statuses/", cfg.Endpoint)
	assert.Equal(t, "@every 10m", cfg.PollSpec)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Duration(0), cfg.Lookback)
	assert.Equal(t, "advance", cfg.WindowPolicy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.SentryDSN)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv("ENDPOINT", "http://localhost:8080/api/homework_statuses/")
	t.Setenv("POLL_SPEC", "@every 1m")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOOKBACK", "10m")
	t.Setenv("WINDOW_POLICY", "FIXED")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/homework_statuses/", cfg.Endpoint)
	assert.Equal(t, "@every 1m", cfg.PollSpec)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Lookback)
	assert.Equal(t, "fixed", cfg.WindowPolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "https://key@sentry.example/1", cfg.SentryDSN)
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	t.Setenv("API_TOKEN", "")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("CHAT_ID", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"API_TOKEN", "BOT_TOKEN", "CHAT_ID"}, missing.Vars)
}

func TestLoad_MissingSingleVar(t *testing.T) {
	t.Setenv("API_TOKEN", "practicum-token")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("CHAT_ID", "987654321")

	_, err := Load()

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"BOT_TOKEN"}, missing.Vars)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_InvalidChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHAT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAT_ID")
}

func TestLoad_InvalidDurations(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	t.Setenv("REQUEST_TIMEOUT", "thirty")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT")

	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("LOOKBACK", "600")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOOKBACK")
}
