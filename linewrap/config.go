// Copyright © 2026 The linefold authors

// Package linewrap rewrites overlong bracketed, comma-separated lines into
// a one-argument-per-line layout and collapses such blocks back into a
// single line, keeping the editing cursor attached to the character the
// user was typing.
package linewrap

// Config holds the reformat thresholds.
type Config struct {
	TextWidth  int // line length that triggers single-line expansion
	ShiftWidth int // columns one indent level adds
}

// DefaultConfig returns the default reformat configuration.
func DefaultConfig() *Config {
	return &Config{
		TextWidth:  79,
		ShiftWidth: 4,
	}
}
