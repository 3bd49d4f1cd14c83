// Copyright © 2026 The linefold authors

package linewrap

import (
	"context"
	"strings"
)

// Engine applies the reformat operation to a host buffer. It holds no
// state across invocations beyond its configuration.
type Engine struct {
	ed        Editor
	cfg       *Config
	annotator Annotator
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnnotator attaches an operation annotator (tracing hook).
func WithAnnotator(a Annotator) Option {
	return func(e *Engine) { e.annotator = a }
}

// New returns an Engine bound to a host editor. If cfg is nil,
// DefaultConfig() is used.
func New(ed Editor, cfg *Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{ed: ed, cfg: cfg}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Reformat handles one buffer change event. A change spanning multiple
// lines is treated as a block collapse/expand; a single-line change is
// treated as a potential overflow expansion. Input that does not look
// like a bracketed construct is left untouched: the engine is
// conservative and never fails.
func (e *Engine) Reformat(ctx context.Context, ch Change) {
	if e.annotator != nil {
		var done func()
		_, done = e.annotator.Begin(ctx, ch)
		defer done()
	}
	if ch.LineCount > 0 {
		e.reformatBlock(ch)
		return
	}
	e.expandLine(ch)
}

// expandLine rewrites a single overlong bracketed line into head, one
// indented item per line, and an aligned closer.
func (e *Engine) expandLine(ch Change) {
	lines := e.ed.Lines(ch.Line, ch.Line)
	if len(lines) == 0 {
		return
	}
	line := lines[0]
	if len(line) <= e.cfg.TextWidth {
		return
	}
	c, ok := ClassifySingle(line)
	if !ok {
		return
	}

	// A trailing separator in the body leaves an empty final item; drop
	// empties so they don't become bare "," lines.
	var items []string
	for _, it := range splitItems(c.Body) {
		if it = trimItem(it, true); it != "" {
			items = append(items, it)
		}
	}

	body := indentItems(items, ch.Indent, e.cfg.ShiftWidth)
	out := make([]string, 0, len(body)+2)
	out = append(out, c.Head)
	out = append(out, body...)
	out = append(out, strings.Repeat(" ", ch.Indent)+c.closer())

	e.ed.ReplaceLines(ch.Line, ch.Line, out)
	cur := e.mapCursor(ch, c, body)
	e.ed.SetCursor(cur.Line, cur.Col)
}

// reformatBlock collapses an expanded construct back into one line when
// the flattened form fits under the width threshold, and re-expands it in
// normalized form when it does not.
func (e *Engine) reformatBlock(ch Change) {
	last := ch.Line + ch.LineCount - 1
	lines := e.ed.Lines(ch.Line, last)
	if len(lines) == 0 {
		return
	}
	first := lines[0]
	closing := lines[len(lines)-1]
	if !classifyBlockEdges(first, closing) {
		return
	}

	var items []string
	for _, l := range lines[1 : len(lines)-1] {
		for _, it := range splitItems(l) {
			if it = trimItem(it, true); it != "" {
				items = append(items, it)
			}
		}
	}

	flat := first + strings.Join(items, ", ") + strings.TrimSpace(closing)
	if len(flat) < e.cfg.TextWidth {
		e.ed.ReplaceLines(ch.Line, last, []string{flat})
		e.ed.SetCursor(ch.Line, len(first)+1)
		return
	}

	out := make([]string, 0, len(items)+2)
	out = append(out, first)
	out = append(out, indentItems(items, ch.Indent, e.cfg.ShiftWidth)...)
	out = append(out, closing)
	e.ed.ReplaceLines(ch.Line, last, out)
	e.ed.SetCursor(ch.Line+1, ch.Indent+e.cfg.ShiftWidth+1)
}
