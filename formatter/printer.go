// Copyright © 2026 The linefold authors

package formatter

import (
	"strings"

	"github.com/linefold/linefold/parser"
)

// writeStatement prints one statement, expanding the outermost construct
// when the single-line rendering does not fit under width.
func writeStatement(n parser.Node, width, indentSize int) []string {
	switch n := n.(type) {
	case parser.Import:
		return importLines(n)

	case parser.Assign:
		head := strings.Join(n.Targets, ", ") + " = "
		value := writeStatement(n.Value, width, indentSize)
		out := []string{head + value[0]}
		return append(out, value[1:]...)

	case parser.Call:
		line := render(n)
		if len(line) < width {
			return []string{line}
		}
		return expand(n.Func+"(", n.Args, ")", indentSize)

	case parser.Collection:
		if len(n.Items) == 0 {
			return []string{n.Open + n.Close}
		}
		line := render(n)
		if len(line) < width {
			return []string{line}
		}
		return expand(n.Open, n.Items, n.Close, indentSize)

	default:
		return []string{render(n)}
	}
}

// expand prints a construct as its head, one indented item per line with
// a trailing comma, and the closer.
func expand(head string, items []parser.Node, close string, indentSize int) []string {
	out := make([]string, 0, len(items)+2)
	out = append(out, head)
	pad := strings.Repeat(" ", indentSize)
	for _, it := range items {
		out = append(out, pad+render(it)+",")
	}
	return append(out, close)
}

// importLines prints an import statement, one line per imported name.
func importLines(n parser.Import) []string {
	out := make([]string, 0, len(n.Names))
	for _, name := range n.Names {
		imp := name.Name
		if name.Alias != "" {
			imp += " as " + name.Alias
		}
		if n.Module != "" {
			out = append(out, "from "+n.Module+" import "+imp)
		} else {
			out = append(out, "import "+imp)
		}
	}
	return out
}

// render prints a node on a single line.
func render(n parser.Node) string {
	switch n := n.(type) {
	case parser.Ident:
		return n.Name
	case parser.Literal:
		return n.Text
	case parser.Keyword:
		return n.Name + "=" + render(n.Value)
	case parser.Star:
		return n.Marker + render(n.Value)
	case parser.Pair:
		return render(n.Key) + ": " + render(n.Value)
	case parser.Call:
		return n.Func + "(" + renderItems(n.Args) + ")"
	case parser.Collection:
		return n.Open + renderItems(n.Items) + n.Close
	case parser.Assign:
		return strings.Join(n.Targets, ", ") + " = " + render(n.Value)
	case parser.Import:
		return strings.Join(importLines(n), "\n")
	}
	return ""
}

func renderItems(items []parser.Node) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, render(it))
	}
	return strings.Join(parts, ", ")
}
