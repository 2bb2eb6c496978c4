package config_test

import (
	"testing"
	"time"

	"go-payroll/internal/shared/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CACHE_TTL", "")
	t.Setenv("KAFKA_BROKER", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, time.Hour, cfg.Redis.CacheTTL)
	assert.Error(t, cfg.RequireKafka())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Redis.CacheTTL)
	assert.NoError(t, cfg.RequireKafka())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("OUTBOX_POLL_INTERVAL", "soon")

	_, err := config.Load()

	assert.Error(t, err)
}
