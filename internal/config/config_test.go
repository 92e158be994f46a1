package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	// an explicitly empty variable wins over the default
	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 20, cfg.App.RateLimitMax)
	assert.Equal(t, 5*time.Second, cfg.Assistant.Timeout)
	assert.True(t, cfg.App.OtelEnabled)
	assert.NotEmpty(t, cfg.Assistant.SystemPrompt)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	assert.True(t, cfg.IsProduction())

	cfg.App.Environment = "development"
	assert.False(t, cfg.IsProduction())
}
