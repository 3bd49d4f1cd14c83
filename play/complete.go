// Copyright © 2026 The linefold authors

package play

import "strings"

var playCommands = []string{":fmt", ":help", ":quit", ":shift", ":width"}

// commandCompleter implements readline.AutoCompleter for the playground
// commands. Commands only complete at the start of the line.
type commandCompleter struct{}

func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' {
			break
		}
		start--
	}
	if start != 0 {
		return nil, 0
	}
	prefix := string(line[:pos])
	if !strings.HasPrefix(prefix, ":") {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	var result [][]rune
	for _, cmd := range playCommands {
		if strings.HasPrefix(cmd, prefix) {
			result = append(result, []rune(cmd[len(prefix):]))
		}
	}
	if len(result) == 0 {
		return nil, 0
	}
	return result, len(prefix)
}
