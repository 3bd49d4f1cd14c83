// Copyright © 2026 The linefold authors

// Package play implements an interactive playground for the line
// reformatter. Each input line is run through the wrap engine with the
// current settings and the result is printed back, which makes it easy
// to experiment with widths before wiring the engine into an editor.
package play

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/linefold/linefold/buffer"
	"github.com/linefold/linefold/formatter"
	"github.com/linefold/linefold/linewrap"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
	wrap   *linewrap.Config
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the playground.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the playground.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithConfig sets the initial wrap settings.
func WithConfig(wrap *linewrap.Config) Option {
	return func(c *config) {
		c.wrap = wrap
	}
}

// Run reads lines interactively and prints each one after reformatting.
// Lines starting with ":" are playground commands (see :help).
func Run(prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	wrap := cfg.wrap
	if wrap == nil {
		wrap = linewrap.DefaultConfig()
	}
	out := io.Writer(os.Stderr)
	if cfg.stderr != nil {
		out = cfg.stderr
	}

	hist := historyPath()
	ensureHistoryFilePermissions(hist)

	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       hist,
		HistorySearchFold: true,
		AutoComplete:      &commandCompleter{},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}
		text := strings.TrimSpace(string(line))
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, ":") {
			if quit := runCommand(out, wrap, text); quit {
				return
			}
			continue
		}
		for _, l := range processLine(text, wrap) {
			fmt.Fprintln(out, l) //nolint:errcheck // best-effort output
		}
	}
}

// processLine runs a single source line through the wrap engine,
// treating the cursor as resting on the last character.
func processLine(line string, cfg *linewrap.Config) []string {
	buf := buffer.New(line)
	eng := linewrap.New(buf, cfg)
	eng.Reformat(context.Background(), linewrap.Change{
		Line:   1,
		Cursor: linewrap.Cursor{Line: 1, Col: len(line)},
		Indent: linewrap.IndentOf(line),
	})
	return buf.All()
}

func runCommand(w io.Writer, cfg *linewrap.Config, text string) (quit bool) {
	fields := strings.Fields(text)
	switch fields[0] {
	case ":quit":
		return true
	case ":width":
		setDim(w, fields, &cfg.TextWidth)
	case ":shift":
		setDim(w, fields, &cfg.ShiftWidth)
	case ":fmt":
		src := strings.TrimSpace(strings.TrimPrefix(text, ":fmt"))
		formatted, err := formatter.Format([]byte(src+"\n"), &formatter.Config{
			Width:      cfg.TextWidth,
			IndentSize: cfg.ShiftWidth,
		})
		if err != nil {
			fmt.Fprintln(w, err) //nolint:errcheck // best-effort output
			return false
		}
		fmt.Fprint(w, string(formatted)) //nolint:errcheck // best-effort output
	case ":help":
		fmt.Fprint(w, commandHelp) //nolint:errcheck // best-effort output
	default:
		fmt.Fprintf(w, "unknown command %s (try :help)\n", fields[0]) //nolint:errcheck // best-effort output
	}
	return false
}

const commandHelp = `Commands:
  :width N   Set the text width threshold
  :shift N   Set the indentation shift width
  :fmt CODE  Run the block formatter on CODE
  :help      Show this help
  :quit      Exit the playground
Any other input is reformatted with the current settings.
`

func setDim(w io.Writer, fields []string, dst *int) {
	if len(fields) != 2 {
		fmt.Fprintf(w, "usage: %s N\n", fields[0]) //nolint:errcheck // best-effort output
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		fmt.Fprintf(w, "%s: want a positive integer, got %q\n", fields[0], fields[1]) //nolint:errcheck // best-effort output
		return
	}
	*dst = n
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linefold_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to user-only access.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = os.WriteFile(path, nil, 0600)
		return
	}
	_ = os.Chmod(path, 0600)
}
