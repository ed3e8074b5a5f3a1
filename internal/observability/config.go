package observability

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the observability configuration for the storefront service.
type Config struct {
	// TracerProvider is the OpenTelemetry tracer provider.
	// If nil, tracing is disabled.
	TracerProvider trace.TracerProvider

	// MeterProvider is the OpenTelemetry meter provider.
	// If nil, metrics collection is disabled.
	MeterProvider metric.MeterProvider

	// ServiceName is used to identify this service in traces and metrics.
	ServiceName string

	// EnableServerTiming enables the Server-Timing HTTP response header.
	// When enabled, timing metrics are added to responses for debugging in
	// browser dev tools.
	EnableServerTiming bool
}

// Option is a functional option for configuring observability.
type Option func(*Config)

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Config) {
		c.MeterProvider = mp
	}
}

// WithServiceName sets the service name for identification.
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithServerTiming enables the Server-Timing HTTP response header.
func WithServerTiming() Option {
	return func(c *Config) {
		c.EnableServerTiming = true
	}
}

// NewConfig creates a new observability configuration with the given options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		ServiceName: "storefront",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Provider bundles the configured tracer and metrics. The zero-cost no-op
// variants are substituted for anything left unconfigured, so callers never
// nil-check before recording.
type Provider struct {
	tracer  *Tracer
	metrics *Metrics
	config  *Config
}

// NewProvider builds a Provider from cfg. A nil cfg yields a fully no-op
// provider.
func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = NewConfig()
	}

	p := &Provider{config: cfg}

	if cfg.TracerProvider != nil {
		p.tracer = NewTracer(cfg.TracerProvider, cfg.ServiceName)
	} else {
		p.tracer = NewNoopTracer()
	}

	if cfg.MeterProvider != nil {
		p.metrics = NewMetrics(cfg.MeterProvider)
	} else {
		p.metrics = NewNoopMetrics()
	}

	return p
}

// Tracer returns the provider's tracer.
func (p *Provider) Tracer() *Tracer { return p.tracer }

// Metrics returns the provider's metric instruments.
func (p *Provider) Metrics() *Metrics { return p.metrics }

// ServerTimingEnabled reports whether Server-Timing headers are on.
func (p *Provider) ServerTimingEnabled() bool {
	return p.config.EnableServerTiming
}
