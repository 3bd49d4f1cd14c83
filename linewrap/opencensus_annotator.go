// Copyright © 2026 The linefold authors

package linewrap

import (
	"context"

	octrace "go.opencensus.io/trace"
)

type ocAnnotator struct{}

// NewOpenCensusAnnotator returns an Annotator that opens an OpenCensus
// span around every reformat operation.
func NewOpenCensusAnnotator() Annotator {
	return &ocAnnotator{}
}

func (p *ocAnnotator) Begin(ctx context.Context, ch Change) (context.Context, func()) {
	ctx, span := octrace.StartSpan(ctx, spanName(ch))
	span.AddAttributes(
		octrace.Int64Attribute("linefold.line", int64(ch.Line)),
		octrace.Int64Attribute("linefold.count", int64(ch.LineCount)),
	)
	return ctx, func() { span.End() }
}
