// Copyright © 2026 The linefold authors

package linewrap

import "strings"

// indentItems renders items one per line at shift+unit columns. Each
// emitted line ends in exactly one comma regardless of whether the item
// already carried one.
func indentItems(items []string, shift, unit int) []string {
	pad := strings.Repeat(" ", shift+unit)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, pad+trimItem(it, true)+",")
	}
	return out
}

// IndentOf returns the leading-whitespace width of line in columns. Tabs
// count as single columns.
func IndentOf(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}
