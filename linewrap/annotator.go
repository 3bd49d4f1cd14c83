// Copyright © 2026 The linefold authors

package linewrap

import "context"

// Annotator observes reformat operations. Begin is called before the
// engine inspects the buffer; the returned function is called when the
// operation completes, whether or not the buffer changed.
type Annotator interface {
	Begin(ctx context.Context, ch Change) (context.Context, func())
}

// spanName names the span for a change by its triggering mode.
func spanName(ch Change) string {
	if ch.LineCount > 0 {
		return "linewrap.block"
	}
	return "linewrap.line"
}
