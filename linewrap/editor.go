// Copyright © 2026 The linefold authors

package linewrap

// Editor is the host buffer surface the engine reads and mutates. Lines
// and columns are 1-based. Calls are assumed to succeed: the engine
// computes every mutation fully in memory and applies it as a single
// contiguous line-range replace, so there is no partial-failure path.
type Editor interface {
	// Lines returns the buffer lines from through to, inclusive.
	Lines(from, to int) []string

	// ReplaceLines replaces the lines from through to, inclusive, with
	// repl. A repl longer or shorter than the range inserts or deletes
	// lines.
	ReplaceLines(from, to int, repl []string)

	// SetCursor moves the cursor to the given line and column.
	SetCursor(line, col int)
}

// Cursor is a 1-based buffer position.
type Cursor struct {
	Line int
	Col  int
}

// Change describes one buffer change event reported by the host. It is
// immutable for the duration of a reformat.
type Change struct {
	// Line is the 1-based line the change was anchored on.
	Line int

	// LineCount is the number of lines spanned by a pending multi-line
	// change. Zero means the change affected only a single line.
	LineCount int

	// Inserted is the character just typed, or the empty string when the
	// event was a deletion or another non-insert edit.
	Inserted string

	// Cursor is the cursor position at the time of the change.
	Cursor Cursor

	// Indent is the indent of the affected line, in columns.
	Indent int
}
