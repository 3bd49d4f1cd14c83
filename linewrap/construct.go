// Copyright © 2026 The linefold authors

package linewrap

import (
	"regexp"
	"strings"
)

// Construct is a bracketed, comma-separated span split into three parts:
// the text up to and including the opening bracket, the raw item list,
// and the closing bracket run through end of line.
type Construct struct {
	Head string
	Body string
	Tail string
}

var (
	// Head is lazy, so it stops at the first opening bracket; the body is
	// lazy too, which hands the longest closer run to the tail. Brackets
	// are matched by symbol class, not by pairing.
	singleRe = regexp.MustCompile(`^(.*?[(\[{])(.*?)([)\]}]+[ \t]*)$`)

	blockOpenRe  = regexp.MustCompile(`[(\[{][ \t]*(#.*)?$`)
	blockCloseRe = regexp.MustCompile(`^[ \t]*[)\]}][)\]} \t]*$`)
)

// ClassifySingle reports whether line, taken as a whole, is a complete
// single-line bracketed construct and returns its parts.
func ClassifySingle(line string) (Construct, bool) {
	m := singleRe.FindStringSubmatch(line)
	if m == nil {
		return Construct{}, false
	}
	return Construct{Head: m[1], Body: m[2], Tail: m[3]}, true
}

// closer returns the tail stripped of whitespace, assuming a plain ")"
// when the construct has no tail of its own.
func (c Construct) closer() string {
	t := strings.TrimSpace(c.Tail)
	if t == "" {
		return ")"
	}
	return t
}

// classifyBlockEdges reports whether first and last look like the opening
// and closing lines of a collapsed construct: first ends with an opening
// bracket, optionally followed by a trailing "#" comment; last holds
// nothing but closing brackets and whitespace. The comment text is
// treated as opaque and never parsed further.
func classifyBlockEdges(first, last string) bool {
	return blockOpenRe.MatchString(first) && blockCloseRe.MatchString(last)
}
