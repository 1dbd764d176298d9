package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI, read from SHIPENGINE_*
// environment variables.
type Config struct {
	// API client
	APIKey    string        `envconfig:"API_KEY"`
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.shipengine.com/v1"`
	PageSize  int           `envconfig:"PAGE_SIZE" default:"50"`
	Retries   int           `envconfig:"RETRIES" default:"1"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	AsObjects bool          `envconfig:"AS_OBJECTS" default:"false"`

	// Telemetry
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"shipengine-cli"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SHIPENGINE", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("shipengine.base_url", c.BaseURL),
		attribute.Bool("shipengine.as_objects", c.AsObjects),
	}
}
