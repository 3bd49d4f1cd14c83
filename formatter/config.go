// Copyright © 2026 The linefold authors

package formatter

// Config holds block formatting configuration.
type Config struct {
	Width      int // target maximum line width (default: 79)
	IndentSize int // spaces per indent level (default: 4)
}

// DefaultConfig returns the default block formatting configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:      79,
		IndentSize: 4,
	}
}
