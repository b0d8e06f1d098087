package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "STORAGE_DRIVER", "MAX_CONTEXT_SIZE", "ADMIN_CHAT_ID",
		"TELEGRAM_BOT_TOKEN", "ORDER_POLL_INTERVAL", "SESSION_TTL", "NODE_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, 20, cfg.MaxContextSize)
	assert.Equal(t, 30*time.Second, cfg.OrderPollInterval)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(1), cfg.NodeID)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ORDER_POLL_INTERVAL", "5s")
	t.Setenv("MAX_CONTEXT_SIZE", "8")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("ADMIN_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 5*time.Second, cfg.OrderPollInterval)
	assert.Equal(t, 8, cfg.MaxContextSize)
	assert.Equal(t, int64(-100123), cfg.AdminChatID)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string][2]string{
		"bad driver":     {"STORAGE_DRIVER", "postgres"},
		"bad interval":   {"ORDER_POLL_INTERVAL", "soon"},
		"bad context":    {"MAX_CONTEXT_SIZE", "-3"},
		"bad chat id":    {"ADMIN_CHAT_ID", "group"},
		"bad node id":    {"NODE_ID", "4096"},
		"token, no chat": {"TELEGRAM_BOT_TOKEN", "token"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
