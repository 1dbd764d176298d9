// Package shipengine provides a client for the ShipEngine v1 shipping
// API: carrier accounts, address validation, label purchase and void,
// rate quoting, tracking, and shipment CRUD and tagging.
//
// A Client holds one immutable default Config; every operation accepts an
// optional *Override that is merged onto the defaults for that call only,
// so concurrent calls never race on configuration. Shipment-returning
// operations honor the resolved AsObjects flag: raw structured replies by
// default, typed Shipment values when enabled.
package shipengine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Observer receives the outcome of each dispatched request. Implemented
// by internal/telemetry.Metrics; a nop observer is used when none is
// wired.
type Observer interface {
	ObserveRequest(operation, status string, duration time.Duration)
}

// Client is the ShipEngine API client.
type Client struct {
	config   Config
	logger   *otelzap.Logger
	tracer   trace.Tracer
	observer Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger wires a logger; the client is silent without one.
func WithLogger(logger *otelzap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer wires a tracer; each operation becomes one span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithObserver wires a request metrics hook.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New creates a Client authenticating with apiKey and library defaults
// for everything else. Shorthand for NewWithConfig(Config{APIKey: apiKey}).
func New(apiKey string, opts ...Option) *Client {
	return NewWithConfig(Config{APIKey: apiKey}, opts...)
}

// NewWithConfig creates a Client from a full configuration. Unset fields
// take the library defaults.
func NewWithConfig(cfg Config, opts ...Option) *Client {
	c := &Client{
		config: cfg.withDefaults(),
		logger: otelzap.New(zap.NewNop()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns a copy of the client's default configuration.
func (c *Client) Config() Config {
	return c.config
}

// ============================================================================
// Carriers, addresses, labels, rates, tracking
// ============================================================================

// ListCarriers lists the carrier accounts connected to the API key.
// GET carriers
func (c *Client) ListCarriers(ctx context.Context, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "list_carriers", http.MethodGet, "carriers", nil, nil)
}

// ValidateAddresses validates shipping addresses. The reply is a JSON
// array with one validation result per input address, in input order.
// POST addresses/validate
func (c *Client) ValidateAddresses(ctx context.Context, addresses []Params, o *Override) ([]Params, error) {
	cfg := c.config.Merge(o)
	raw, err := c.dispatch(ctx, cfg, "validate_addresses", http.MethodPost, "addresses/validate", nil, addresses)
	if err != nil {
		return nil, err
	}
	var out []Params
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding validate_addresses reply: %w", err)
	}
	return out, nil
}

// CreateLabelFromRate purchases a label for a previously quoted rate.
// POST labels/rates/{rateId}
func (c *Client) CreateLabelFromRate(ctx context.Context, rateID string, params Params, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "create_label_from_rate", http.MethodPost, "labels/rates/"+rateID, nil, params)
}

// CreateLabelFromShipment purchases a label for shipment details supplied
// inline.
// POST labels
func (c *Client) CreateLabelFromShipment(ctx context.Context, params Params, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "create_label_from_shipment", http.MethodPost, "labels", nil, params)
}

// VoidLabel voids a purchased label.
// PUT labels/{labelId}/void
func (c *Client) VoidLabel(ctx context.Context, labelID string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "void_label", http.MethodPut, "labels/"+labelID+"/void", nil, nil)
}

// GetRates quotes rates for shipment details.
// POST rates
func (c *Client) GetRates(ctx context.Context, params Params, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "get_rates", http.MethodPost, "rates", nil, params)
}

// TrackByLabelID returns tracking information for a purchased label.
// GET labels/{labelId}/track
func (c *Client) TrackByLabelID(ctx context.Context, labelID string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "track_by_label_id", http.MethodGet, "labels/"+labelID+"/track", nil, nil)
}

// Track returns tracking information for a carrier code plus tracking
// number.
// GET tracking?carrier_code=&tracking_number=
func (c *Client) Track(ctx context.Context, carrierCode, trackingNumber string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	query := url.Values{}
	query.Set("carrier_code", carrierCode)
	query.Set("tracking_number", trackingNumber)
	return c.objectDispatch(ctx, cfg, "track", http.MethodGet, "tracking", query, nil)
}

// ============================================================================
// Shipments
// ============================================================================

// ListShipments lists shipments. params become query parameters; the
// resolved PageSize is applied as page_size unless params already carry
// one. Typed conversion per the resolved AsObjects flag.
// GET shipments
func (c *Client) ListShipments(ctx context.Context, params Params, o *Override) (*ShipmentListResult, error) {
	cfg := c.config.Merge(o)
	query := toQuery(params)
	if query == nil {
		query = url.Values{}
	}
	if query.Get("page_size") == "" {
		query.Set("page_size", fmt.Sprint(cfg.PageSize))
	}
	raw, err := c.objectDispatch(ctx, cfg, "list_shipments", http.MethodGet, "shipments", query, nil)
	if err != nil {
		return nil, err
	}
	return listResult(raw, cfg)
}

// CreateShipments creates one or more shipments. When the reply's
// has_errors field signals a partial or total failure, typed conversion
// is skipped even with AsObjects enabled so callers can inspect the
// per-item error detail in Raw.
// POST shipments
func (c *Client) CreateShipments(ctx context.Context, shipments []Params, o *Override) (*ShipmentListResult, error) {
	cfg := c.config.Merge(o)
	body := Params{"shipments": shipments}
	raw, err := c.objectDispatch(ctx, cfg, "create_shipments", http.MethodPost, "shipments", nil, body)
	if err != nil {
		return nil, err
	}
	if hasErrors, ok := raw["has_errors"].(bool); ok && hasErrors {
		return &ShipmentListResult{Raw: raw}, nil
	}
	return listResult(raw, cfg)
}

// GetShipmentByExternalID fetches a shipment by its external shipment id.
// GET shipments/external_shipment_id/{id}
func (c *Client) GetShipmentByExternalID(ctx context.Context, externalID string, o *Override) (*ShipmentResult, error) {
	cfg := c.config.Merge(o)
	raw, err := c.objectDispatch(ctx, cfg, "get_shipment_by_external_id", http.MethodGet, "shipments/external_shipment_id/"+externalID, nil, nil)
	if err != nil {
		return nil, err
	}
	return singleResult(raw, cfg)
}

// ParseShipment recognizes shipment details from unstructured text.
// PUT shipments/recognize
func (c *Client) ParseShipment(ctx context.Context, params Params, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "parse_shipment", http.MethodPut, "shipments/recognize", nil, params)
}

// GetShipmentByID fetches a shipment by id.
// GET shipments/{id}
func (c *Client) GetShipmentByID(ctx context.Context, shipmentID string, o *Override) (*ShipmentResult, error) {
	cfg := c.config.Merge(o)
	raw, err := c.objectDispatch(ctx, cfg, "get_shipment_by_id", http.MethodGet, "shipments/"+shipmentID, nil, nil)
	if err != nil {
		return nil, err
	}
	return singleResult(raw, cfg)
}

// UpdateShipment updates a shipment.
// PUT shipments/{id}
func (c *Client) UpdateShipment(ctx context.Context, shipmentID string, params Params, o *Override) (*ShipmentResult, error) {
	cfg := c.config.Merge(o)
	raw, err := c.objectDispatch(ctx, cfg, "update_shipment", http.MethodPut, "shipments/"+shipmentID, nil, params)
	if err != nil {
		return nil, err
	}
	return singleResult(raw, cfg)
}

// CancelShipment cancels a shipment.
// PUT shipments/{id}/cancel
func (c *Client) CancelShipment(ctx context.Context, shipmentID string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "cancel_shipment", http.MethodPut, "shipments/"+shipmentID+"/cancel", nil, nil)
}

// GetShipmentRates quotes rates for an existing shipment.
// GET shipments/{id}/rates
func (c *Client) GetShipmentRates(ctx context.Context, shipmentID string, params Params, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "get_shipment_rates", http.MethodGet, "shipments/"+shipmentID+"/rates", toQuery(params), nil)
}

// TagShipment adds a tag to a shipment.
// POST shipments/{id}/tags/{tag}
func (c *Client) TagShipment(ctx context.Context, shipmentID, tag string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "tag_shipment", http.MethodPost, "shipments/"+shipmentID+"/tags/"+tag, nil, nil)
}

// UntagShipment removes a tag from a shipment.
// DELETE shipments/{id}/tags/{tag}
func (c *Client) UntagShipment(ctx context.Context, shipmentID, tag string, o *Override) (Params, error) {
	cfg := c.config.Merge(o)
	return c.objectDispatch(ctx, cfg, "untag_shipment", http.MethodDelete, "shipments/"+shipmentID+"/tags/"+tag, nil, nil)
}

// ============================================================================
// Dispatch
// ============================================================================

// dispatch issues exactly one transport call for a logical operation with
// the resolved configuration. It adds no retry logic of its own; retry
// and timeout enforcement belong to the transport.
func (c *Client) dispatch(ctx context.Context, cfg Config, op, method, path string, query url.Values, body any) (json.RawMessage, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "shipengine."+op, trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("shipengine.path", path),
		))
		defer span.End()
	}

	c.logger.Ctx(ctx).Debug("Dispatching ShipEngine request",
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("path", path),
	)

	start := time.Now()
	raw, err := cfg.Transport.Do(ctx, &Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Body:    body,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	})
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		c.logger.Ctx(ctx).Error("ShipEngine request failed",
			zap.String("operation", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	if c.observer != nil {
		c.observer.ObserveRequest(op, status, duration)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// objectDispatch dispatches and decodes the reply as a JSON object.
func (c *Client) objectDispatch(ctx context.Context, cfg Config, op, method, path string, query url.Values, body any) (Params, error) {
	raw, err := c.dispatch(ctx, cfg, op, method, path, query, body)
	if err != nil {
		return nil, err
	}
	var out Params
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding %s reply: %w", op, err)
	}
	return out, nil
}

// singleResult applies the result-shape policy to a single-shipment reply.
func singleResult(raw Params, cfg Config) (*ShipmentResult, error) {
	res := &ShipmentResult{Raw: raw}
	if !cfg.AsObjects {
		return res, nil
	}
	shipments, err := convertShipments(raw)
	if err != nil {
		return nil, err
	}
	if len(shipments) > 0 {
		res.Shipment = &shipments[0]
	}
	return res, nil
}

// listResult applies the result-shape policy to a collection reply.
func listResult(raw Params, cfg Config) (*ShipmentListResult, error) {
	res := &ShipmentListResult{Raw: raw}
	if !cfg.AsObjects {
		return res, nil
	}
	shipments, err := convertShipments(raw)
	if err != nil {
		return nil, err
	}
	res.Shipments = shipments
	return res, nil
}

// toQuery flattens a params mapping into URL query values.
func toQuery(params Params) url.Values {
	if len(params) == 0 {
		return nil
	}
	query := url.Values{}
	for k, v := range params {
		switch vv := v.(type) {
		case []string:
			for _, item := range vv {
				query.Add(k, item)
			}
		case []any:
			for _, item := range vv {
				query.Add(k, fmt.Sprint(item))
			}
		default:
			query.Set(k, fmt.Sprint(v))
		}
	}
	return query
}
