package shipengine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashcdev/shipengine-go/pkg/shipengine"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNew_Defaults(t *testing.T) {
	client := shipengine.New("key-123")
	cfg := client.Config()

	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, shipengine.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, shipengine.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, shipengine.DefaultRetries, cfg.Retries)
	assert.Equal(t, shipengine.DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.AsObjects)
	assert.IsType(t, &shipengine.HTTPTransport{}, cfg.Transport)
}

func TestNewWithConfig_KeepsExplicitValues(t *testing.T) {
	transport := shipengine.NewMockTransport()
	client := shipengine.NewWithConfig(shipengine.Config{
		APIKey:    "key-123",
		BaseURL:   "https://sandbox.example.com/v1",
		PageSize:  10,
		Retries:   3,
		Timeout:   5 * time.Second,
		Transport: transport,
		AsObjects: true,
	})
	cfg := client.Config()

	assert.Equal(t, "https://sandbox.example.com/v1", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Same(t, transport, cfg.Transport)
	assert.True(t, cfg.AsObjects)
}

func TestConfig_Merge_NilIsIdentity(t *testing.T) {
	cfg := shipengine.New("key-123").Config()

	merged := cfg.Merge(nil)

	assert.Equal(t, cfg, merged)
}

func TestConfig_Merge_OverlaysOnlyPresentFields(t *testing.T) {
	cfg := shipengine.New("key-123").Config()

	merged := cfg.Merge(&shipengine.Override{
		PageSize: ptr(5),
		Timeout:  ptr(2 * time.Second),
	})

	// Overridden fields take the override's values.
	assert.Equal(t, 5, merged.PageSize)
	assert.Equal(t, 2*time.Second, merged.Timeout)

	// Everything else is equal to the defaults, field by field.
	assert.Equal(t, cfg.APIKey, merged.APIKey)
	assert.Equal(t, cfg.BaseURL, merged.BaseURL)
	assert.Equal(t, cfg.Retries, merged.Retries)
	assert.Equal(t, cfg.Transport, merged.Transport)
	assert.Equal(t, cfg.AsObjects, merged.AsObjects)
}

func TestConfig_Merge_FullOverride(t *testing.T) {
	transport := shipengine.NewMockTransport()
	cfg := shipengine.New("key-123").Config()

	merged := cfg.Merge(&shipengine.Override{
		APIKey:    ptr("other-key"),
		BaseURL:   ptr("https://sandbox.example.com/v1"),
		PageSize:  ptr(7),
		Retries:   ptr(0),
		Timeout:   ptr(time.Second),
		Transport: transport,
		AsObjects: ptr(true),
	})

	assert.Equal(t, "other-key", merged.APIKey)
	assert.Equal(t, "https://sandbox.example.com/v1", merged.BaseURL)
	assert.Equal(t, 7, merged.PageSize)
	assert.Equal(t, 0, merged.Retries)
	assert.Equal(t, time.Second, merged.Timeout)
	assert.Same(t, transport, merged.Transport)
	assert.True(t, merged.AsObjects)
}

func TestConfig_Merge_DoesNotMutateReceiver(t *testing.T) {
	client := shipengine.New("key-123")
	before := client.Config()

	_ = before.Merge(&shipengine.Override{
		APIKey:   ptr("other-key"),
		PageSize: ptr(1),
	})

	require.Equal(t, before, client.Config())
	assert.Equal(t, "key-123", client.Config().APIKey)
}
