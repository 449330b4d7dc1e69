package cascade

import (
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName is the OpenTelemetry scope name used by WithTracing
// and WithMetrics.
const instrumentationName = "github.com/zoobzio/cascade"

// defaultName identifies dispatchers created without WithName.
const defaultName = "cascade"

var (
	defaultOptions []Option
	defaultOptMu   sync.Mutex
)

// Option configures a dispatcher.
type Option func(*config)

// PanicHandler is called when a listener panics during dispatch.
// Receives the listener's priority and the recovered panic value.
type PanicHandler func(priority int32, recovered any)

type config struct {
	name         string
	logger       *slog.Logger
	panicHandler PanicHandler
	tracer       trace.Tracer
	meter        metric.Meter
}

// newConfig applies the package defaults and then opts.
func newConfig(opts []Option) config {
	cfg := config{name: defaultName}

	defaultOptMu.Lock()
	defaults := defaultOptions
	defaultOptMu.Unlock()

	for _, opt := range defaults {
		opt(&cfg)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// Configure sets options applied to every dispatcher created afterwards.
// Options passed to a constructor are applied after these and take precedence.
// Dispatchers that already exist are not affected.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOptions = opts
	defaultOptMu.Unlock()
}

// WithName sets the dispatcher name used in log records and telemetry.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the structured logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPanicHandler recovers listener panics and reports them to handler.
// A recovered listener counts as Continue and the dispatch carries on.
// Without a handler, a panic propagates to the caller of Dispatch.
func WithPanicHandler(handler PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = handler
	}
}

// WithTracer records a span for every dispatch pass using tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithTracing records dispatch spans using the global TracerProvider.
func WithTracing() Option {
	return WithTracer(otel.Tracer(instrumentationName))
}

// WithMeter records dispatch metrics using meter.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}

// WithMetrics records dispatch metrics using the global MeterProvider.
func WithMetrics() Option {
	return WithMeter(otel.Meter(instrumentationName))
}
