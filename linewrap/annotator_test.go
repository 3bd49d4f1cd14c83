// Copyright © 2026 The linefold authors

package linewrap_test

import (
	"context"
	"sync"
	"testing"

	"github.com/linefold/linefold/buffer"
	"github.com/linefold/linefold/linewrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	octrace "go.opencensus.io/trace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	buf := buffer.New("foo(a, b, c)")
	eng := linewrap.New(buf, &linewrap.Config{TextWidth: 8, ShiftWidth: 2},
		linewrap.WithAnnotator(linewrap.NewOpenTelemetryAnnotator()))
	eng.Reformat(context.Background(), linewrap.Change{Line: 1})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "linewrap.line", spans[0].Name)
}

func TestNewOpenTelemetryAnnotatorBlockSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	buf := buffer.New("foo(", "  a,", ")")
	eng := linewrap.New(buf, linewrap.DefaultConfig(),
		linewrap.WithAnnotator(linewrap.NewOpenTelemetryAnnotator()))
	eng.Reformat(context.Background(), linewrap.Change{Line: 1, LineCount: 3})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "linewrap.block", spans[0].Name)
}

type ocSpanExporter struct {
	mu    sync.Mutex
	spans []*octrace.SpanData
}

func (e *ocSpanExporter) ExportSpan(sd *octrace.SpanData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, sd)
}

func (e *ocSpanExporter) names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var names []string
	for _, sd := range e.spans {
		names = append(names, sd.Name)
	}
	return names
}

func TestNewOpenCensusAnnotator(t *testing.T) {
	exporter := &ocSpanExporter{}
	octrace.RegisterExporter(exporter)
	t.Cleanup(func() { octrace.UnregisterExporter(exporter) })
	octrace.ApplyConfig(octrace.Config{DefaultSampler: octrace.AlwaysSample()})

	buf := buffer.New("foo(a, b, c)")
	eng := linewrap.New(buf, &linewrap.Config{TextWidth: 8, ShiftWidth: 2},
		linewrap.WithAnnotator(linewrap.NewOpenCensusAnnotator()))
	eng.Reformat(context.Background(), linewrap.Change{Line: 1})

	assert.Equal(t, []string{"linewrap.line"}, exporter.names())
}
