package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "/ws", cfg.WebSocket.Path)
	assert.Equal(t, 256, cfg.WebSocket.SendBuffer)
	assert.Zero(t, cfg.WebSocket.PongWait)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MARKET_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("STORE_DSN", "host=localhost user=postgres dbname=market")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com")
	t.Setenv("WS_PONG_WAIT", "45s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.WebSocket.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.WebSocket.PongWait)
}

func TestLoadConfigRejectsBadStore(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
	})

	t.Run("missing dsn", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mysql")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STORE_DSN is required")
	})
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ServerConfig{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, ServerConfig{LogLevel: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, ServerConfig{LogLevel: ""}.SlogLevel())
}
