// Copyright © 2026 The linefold authors

// Package formatter provides whole-block source formatting. It parses a
// block of statements into an AST, then prints each statement either on
// one line or in expanded one-item-per-line form depending on the width
// limit. Comment blocks are refilled as prose. Anything the formatter
// cannot make sense of is returned unchanged: be nice to the user.
package formatter

import (
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/linefold/linefold/parser"
)

const commentToken = "# "

// Format formats a block of source text. If cfg is nil, DefaultConfig()
// is used. The result carries exactly one trailing newline when there is
// any content.
func Format(source []byte, cfg *Config) ([]byte, error) {
	lines := splitLines(string(source))
	out := FormatLines(lines, cfg)

	result := strings.Join(out, "\n")
	if len(result) > 0 {
		result = strings.TrimRight(result, "\n") + "\n"
	}
	return []byte(result), nil
}

// FormatLines formats a block of source lines. Input that fails to
// format comes back as it was.
func FormatLines(lines []string, cfg *Config) (out []string) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(lines) == 0 {
		return lines
	}

	// If anything goes wrong, return the original as it was.
	defer func() {
		if recover() != nil {
			out = lines
		}
	}()

	data, indent := unindent(lines)

	// The removed indentation still counts toward line length.
	width := cfg.Width - indent

	for _, block := range segment(data) {
		if strings.HasPrefix(block[0], "#") {
			out = append(out, fillProse(commentToken, block, width)...)
			continue
		}
		out = append(out, formatCode(block, width, cfg.IndentSize)...)
	}

	return reindent(out, indent)
}

// segment groups lines into alternating comment and code blocks. A new
// block starts whenever a line switches context between the two.
func segment(lines []string) [][]string {
	blocks := [][]string{{}}
	for _, line := range lines {
		comment := strings.HasPrefix(line, "#")
		last := blocks[len(blocks)-1]
		if len(last) > 0 && comment != strings.HasPrefix(last[0], "#") {
			blocks = append(blocks, nil)
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line)
	}
	if len(blocks) == 1 && len(blocks[0]) == 0 {
		return nil
	}
	return blocks
}

// formatCode parses a code block and prints its statements. A block that
// does not parse is assumed to be prose from a docstring or similar and
// is refilled without a comment token.
func formatCode(block []string, width, indentSize int) []string {
	stmts, err := parser.ParseStatements([]byte(strings.Join(block, "\n")))
	if err != nil {
		return fillProse("", block, width)
	}
	var out []string
	for _, st := range stmts {
		out = append(out, writeStatement(st, width, indentSize)...)
	}
	return out
}

// fillProse rewraps a block as prose at the given width. The token is
// stripped from the input first and prefixed onto every output line.
func fillProse(token string, lines []string, width int) []string {
	text := strings.Join(lines, "\n")
	if token != "" {
		text = strings.ReplaceAll(text, token, "")
	}
	// Collapse existing breaks so the wrap starts from a single stream
	// of words.
	text = strings.Join(strings.Fields(text), " ")

	w := width - len(token)
	if w < 1 {
		w = 1
	}
	wrapped := wordwrap.String(text, w)

	out := strings.Split(wrapped, "\n")
	for i := range out {
		out[i] = strings.TrimRight(token+out[i], " ")
	}
	return out
}

var leadingSpaceRe = regexp.MustCompile(`\S`)

// unindent removes the first line's indentation from every line so the
// parser sees column-zero statements, returning the stripped lines and
// the removed width.
func unindent(lines []string) ([]string, int) {
	loc := leadingSpaceRe.FindStringIndex(lines[0])
	if loc == nil || loc[0] == 0 {
		return lines, 0
	}
	indent := loc[0]
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= indent {
			out[i] = l[indent:]
		} else {
			out[i] = l
		}
	}
	return out, indent
}

// reindent re-applies the indentation that unindent removed.
func reindent(lines []string, indent int) []string {
	if indent == 0 {
		return lines
	}
	pad := strings.Repeat(" ", indent)
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			continue
		}
		out[i] = pad + l
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
