package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashcdev/shipengine-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.shipengine.com/v1", cfg.BaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 1, cfg.Retries)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.AsObjects)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.OTELEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SHIPENGINE_API_KEY", "env-key")
	t.Setenv("SHIPENGINE_BASE_URL", "https://sandbox.example.com/v1")
	t.Setenv("SHIPENGINE_PAGE_SIZE", "10")
	t.Setenv("SHIPENGINE_TIMEOUT", "5s")
	t.Setenv("SHIPENGINE_AS_OBJECTS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://sandbox.example.com/v1", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.AsObjects)
}

func TestConfig_Attributes(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	attrs := cfg.Attributes()
	assert.NotEmpty(t, attrs)
}
