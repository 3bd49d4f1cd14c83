// Copyright © 2026 The linefold authors

// Package buffer provides an in-memory line buffer implementing the
// linewrap.Editor interface, used by tests and command-line entry points
// in place of a live editor.
package buffer

import (
	"strings"

	"github.com/linefold/linefold/linewrap"
)

// Buffer is a sequence of lines addressed by 1-based line number, with a
// tracked cursor. The zero value is an empty buffer.
type Buffer struct {
	lines  []string
	cursor linewrap.Cursor
}

// New returns a buffer holding the given lines, cursor at 1:1.
func New(lines ...string) *Buffer {
	return &Buffer{
		lines:  append([]string(nil), lines...),
		cursor: linewrap.Cursor{Line: 1, Col: 1},
	}
}

// FromText returns a buffer holding text split on newlines. A trailing
// newline does not produce a final empty line.
func FromText(text string) *Buffer {
	text = strings.TrimSuffix(text, "\n")
	return New(strings.Split(text, "\n")...)
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int { return len(b.lines) }

// All returns a copy of every line in the buffer.
func (b *Buffer) All() []string {
	return append([]string(nil), b.lines...)
}

// Text returns the buffer content joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() linewrap.Cursor { return b.cursor }

// Lines returns the lines from through to, inclusive. Out-of-range
// bounds are clamped to the buffer.
func (b *Buffer) Lines(from, to int) []string {
	from, to = b.clamp(from, to)
	if from > to {
		return nil
	}
	return append([]string(nil), b.lines[from-1:to]...)
}

// ReplaceLines replaces the lines from through to, inclusive, with repl.
func (b *Buffer) ReplaceLines(from, to int, repl []string) {
	from, to = b.clamp(from, to)
	if from > to {
		return
	}
	out := make([]string, 0, len(b.lines)-(to-from+1)+len(repl))
	out = append(out, b.lines[:from-1]...)
	out = append(out, repl...)
	out = append(out, b.lines[to:]...)
	b.lines = out
}

// SetCursor moves the cursor.
func (b *Buffer) SetCursor(line, col int) {
	b.cursor = linewrap.Cursor{Line: line, Col: col}
}

func (b *Buffer) clamp(from, to int) (int, int) {
	if from < 1 {
		from = 1
	}
	if to > len(b.lines) {
		to = len(b.lines)
	}
	return from, to
}
