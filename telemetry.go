package cascade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// pass summarizes one dispatch for stats and telemetry.
type pass struct {
	listeners int
	invoked   int
	filtered  int
	pruned    int
	consumed  bool
	panics    int
	aborted   bool // a listener panic propagated to the caller
}

// telemetry holds the OpenTelemetry instruments of a dispatcher.
// A nil tracer or nil instrument disables that signal.
type telemetry struct {
	name        string
	tracer      trace.Tracer
	dispatches  metric.Int64Counter
	invocations metric.Int64Counter
	duration    metric.Float64Histogram
}

func newTelemetry(cfg config) telemetry {
	t := telemetry{name: cfg.name, tracer: cfg.tracer}
	if cfg.meter == nil {
		return t
	}

	// The OTel API returns noop instruments alongside any error.
	t.dispatches, _ = cfg.meter.Int64Counter(
		"cascade.dispatch.count",
		metric.WithDescription("Total number of dispatch passes"),
		metric.WithUnit("{dispatch}"),
	)
	t.invocations, _ = cfg.meter.Int64Counter(
		"cascade.listener.invocations",
		metric.WithDescription("Total number of listener invocations by returned status"),
		metric.WithUnit("{invocation}"),
	)
	t.duration, _ = cfg.meter.Float64Histogram(
		"cascade.dispatch.duration",
		metric.WithDescription("Duration of a dispatch pass in seconds"),
		metric.WithUnit("s"),
	)
	return t
}

// start opens the span for a pass. Returns a nil span when tracing is off.
func (t *telemetry) start(ctx context.Context) (context.Context, trace.Span) {
	if t.tracer == nil {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "cascade.dispatch",
		trace.WithAttributes(attribute.String("cascade.dispatcher", t.name)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// invoked records a single listener call.
func (t *telemetry) invoked(ctx context.Context, status Status) {
	if t.invocations == nil {
		return
	}
	t.invocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cascade.dispatcher", t.name),
		attribute.String("status", status.String()),
	))
}

// finish ends the span and records the pass metrics.
func (t *telemetry) finish(ctx context.Context, span trace.Span, p pass, elapsed time.Duration) {
	if span != nil {
		span.SetAttributes(
			attribute.Int("cascade.listeners", p.listeners),
			attribute.Int("cascade.invoked", p.invoked),
			attribute.Int("cascade.filtered", p.filtered),
			attribute.Int("cascade.pruned", p.pruned),
			attribute.Bool("cascade.consumed", p.consumed),
			attribute.Bool("cascade.aborted", p.aborted),
		)
		switch {
		case p.aborted:
			err := errors.New("cascade: dispatch aborted by listener panic")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case p.panics > 0:
			err := fmt.Errorf("cascade: %d listener panic(s) recovered", p.panics)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		default:
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	if t.dispatches == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("cascade.dispatcher", t.name),
		attribute.Bool("cascade.consumed", p.consumed),
	)
	t.dispatches.Add(ctx, 1, attrs)
	t.duration.Record(ctx, elapsed.Seconds(), attrs)
}
