// Copyright © 2026 The linefold authors

package linewrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitItems(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitItems("a, b, c"))
	assert.Equal(t, []string{"a", "b", "c"}, splitItems("a,b,c"))
	assert.Equal(t, []string{"only"}, splitItems("only"))

	// The split is flat: commas inside nested brackets split too.
	assert.Equal(t, []string{"a", "bar(b", "c)", "d"}, splitItems("a, bar(b, c), d"))

	// A trailing separator leaves an empty final item for the caller.
	assert.Equal(t, []string{"a", "b", ""}, splitItems("a, b,"))
}

func TestTrimItem(t *testing.T) {
	assert.Equal(t, "a", trimItem("  a  ", false))
	assert.Equal(t, "a", trimItem("  a ,", true))
	assert.Equal(t, "a,", trimItem("a,", false))
	assert.Equal(t, "a", trimItem("a,", true))
	assert.Equal(t, "", trimItem("  , ", true))
}

func TestIndentItems(t *testing.T) {
	got := indentItems([]string{" a", "b,", " c ,"}, 0, 2)
	assert.Equal(t, []string{"  a,", "  b,", "  c,"}, got)

	got = indentItems([]string{"x"}, 4, 4)
	assert.Equal(t, []string{"        x,"}, got)
}

func TestIndentOf(t *testing.T) {
	assert.Equal(t, 0, IndentOf("foo"))
	assert.Equal(t, 4, IndentOf("    foo"))
	assert.Equal(t, 2, IndentOf("  "))
	assert.Equal(t, 0, IndentOf(""))
}
