// Copyright © 2026 The linefold authors

package linewrap

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a
	// context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"
)

type otelAnnotator struct{}

// NewOpenTelemetryAnnotator returns an Annotator that opens an
// OpenTelemetry span around every reformat operation.
func NewOpenTelemetryAnnotator() Annotator {
	return &otelAnnotator{}
}

func (p *otelAnnotator) Begin(ctx context.Context, ch Change) (context.Context, func()) {
	ctx, span := contextTracer(ctx).Start(ctx, spanName(ch),
		trace.WithAttributes(
			attribute.Int("linefold.line", ch.Line),
			attribute.Int("linefold.count", ch.LineCount),
		))
	return ctx, func() { span.End() }
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "linefold"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}
