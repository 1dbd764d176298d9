package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ashcdev/shipengine-go/internal/config"
	"github.com/ashcdev/shipengine-go/internal/telemetry"
	"github.com/ashcdev/shipengine-go/pkg/shipengine"
)

// app bundles the client and telemetry wired from the environment for one
// command invocation.
type app struct {
	Client *shipengine.Client

	logger         *otelzap.Logger
	tracerShutdown func(context.Context) error
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var tracer trace.Tracer
	var shutdown func(context.Context) error
	if cfg.OTELEnabled {
		tracer, shutdown, err = telemetry.InitTracer(context.Background(),
			cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
		if err != nil {
			logger.Warn("Failed to initialize tracer", zap.Error(err))
		}
	}

	opts := []shipengine.Option{
		shipengine.WithLogger(logger),
		shipengine.WithObserver(telemetry.NewMetrics()),
	}
	if tracer != nil {
		opts = append(opts, shipengine.WithTracer(tracer))
	}

	client := shipengine.NewWithConfig(shipengine.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		PageSize:  cfg.PageSize,
		Retries:   cfg.Retries,
		Timeout:   cfg.Timeout,
		AsObjects: cfg.AsObjects,
	}, opts...)

	return &app{
		Client:         client,
		logger:         logger,
		tracerShutdown: shutdown,
	}, nil
}

// Close flushes telemetry before the process exits.
func (a *app) Close(ctx context.Context) {
	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			a.logger.Warn("Failed to flush tracer", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// readJSONArg decodes the first argument, or stdin when none is given,
// into out.
func readJSONArg(args []string, out any) error {
	var data []byte
	if len(args) > 0 {
		data = []byte(args[0])
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		data = b
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing JSON input: %w", err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
