// Copyright © 2026 The linefold authors

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) Node {
	t.Helper()
	stmts, err := ParseStatements([]byte(src))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestParseTerms(t *testing.T) {
	assert.Equal(t, Ident{Name: "foo"}, parseOne(t, "foo"))
	assert.Equal(t, Ident{Name: "os.path"}, parseOne(t, "os.path"))
	assert.Equal(t, Literal{Text: "42"}, parseOne(t, "42"))
	assert.Equal(t, Literal{Text: "-1.5e3"}, parseOne(t, "-1.5e3"))
	assert.Equal(t, Literal{Text: `"hey"`}, parseOne(t, `"hey"`))
	assert.Equal(t, Literal{Text: `'hey'`}, parseOne(t, `'hey'`))
}

func TestParseCall(t *testing.T) {
	got := parseOne(t, "foo(1, bar, baz=2)")
	want := Call{
		Func: "foo",
		Args: []Node{
			Literal{Text: "1"},
			Ident{Name: "bar"},
			Keyword{Name: "baz", Value: Literal{Text: "2"}},
		},
	}
	assert.Equal(t, want, got)
}

func TestParseCallNoArgs(t *testing.T) {
	assert.Equal(t, Call{Func: "foo", Args: []Node{}}, parseOne(t, "foo()"))
}

func TestParseCallStarArgs(t *testing.T) {
	got := parseOne(t, "foo(a, *args, **kwargs)")
	want := Call{
		Func: "foo",
		Args: []Node{
			Ident{Name: "a"},
			Star{Marker: "*", Value: Ident{Name: "args"}},
			Star{Marker: "**", Value: Ident{Name: "kwargs"}},
		},
	}
	assert.Equal(t, want, got)
}

func TestParseCallTrailingComma(t *testing.T) {
	got := parseOne(t, "foo(a, b,)")
	want := Call{
		Func: "foo",
		Args: []Node{Ident{Name: "a"}, Ident{Name: "b"}},
	}
	assert.Equal(t, want, got)
}

func TestParseNestedCall(t *testing.T) {
	got := parseOne(t, "foo(bar(1), baz)")
	want := Call{
		Func: "foo",
		Args: []Node{
			Call{Func: "bar", Args: []Node{Literal{Text: "1"}}},
			Ident{Name: "baz"},
		},
	}
	assert.Equal(t, want, got)
}

func TestParseCollections(t *testing.T) {
	assert.Equal(t,
		Collection{Open: "[", Close: "]", Items: []Node{
			Literal{Text: "1"}, Literal{Text: "2"},
		}},
		parseOne(t, "[1, 2]"))

	assert.Equal(t,
		Collection{Open: "(", Close: ")", Items: []Node{
			Ident{Name: "a"}, Ident{Name: "b"},
		}},
		parseOne(t, "(a, b)"))

	assert.Equal(t,
		Collection{Open: "{", Close: "}", Items: []Node{
			Pair{Key: Literal{Text: `"k"`}, Value: Literal{Text: "1"}},
		}},
		parseOne(t, `{"k": 1}`))

	assert.Equal(t,
		Collection{Open: "{", Close: "}", Items: []Node{
			Literal{Text: "1"}, Literal{Text: "2"},
		}},
		parseOne(t, "{1, 2}"))

	assert.Equal(t,
		Collection{Open: "[", Close: "]", Items: []Node{}},
		parseOne(t, "[]"))
}

func TestParseAssign(t *testing.T) {
	got := parseOne(t, "x = foo(1)")
	want := Assign{
		Targets: []string{"x"},
		Value:   Call{Func: "foo", Args: []Node{Literal{Text: "1"}}},
	}
	assert.Equal(t, want, got)
}

func TestParseAssignMultipleTargets(t *testing.T) {
	got := parseOne(t, "x, y = fetch()")
	want := Assign{
		Targets: []string{"x", "y"},
		Value:   Call{Func: "fetch", Args: []Node{}},
	}
	assert.Equal(t, want, got)
}

func TestParseImports(t *testing.T) {
	got := parseOne(t, "import os, sys")
	want := Import{Names: []ImportName{{Name: "os"}, {Name: "sys"}}}
	assert.Equal(t, want, got)

	got = parseOne(t, "from collections import OrderedDict as OD, deque")
	want = Import{
		Module: "collections",
		Names: []ImportName{
			{Name: "OrderedDict", Alias: "OD"},
			{Name: "deque"},
		},
	}
	assert.Equal(t, want, got)

	got = parseOne(t, "import numpy as np")
	want = Import{Names: []ImportName{{Name: "numpy", Alias: "np"}}}
	assert.Equal(t, want, got)
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := ParseStatements([]byte("import os\nx = 1\nfoo(x)"))
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.IsType(t, Import{}, stmts[0])
	assert.IsType(t, Assign{}, stmts[1])
	assert.IsType(t, Call{}, stmts[2])
}

func TestParseMultilineCall(t *testing.T) {
	src := "foo(\n    a,\n    b,\n)"
	got := parseOne(t, src)
	want := Call{Func: "foo", Args: []Node{Ident{Name: "a"}, Ident{Name: "b"}}}
	assert.Equal(t, want, got)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseStatements([]byte("foo(bar"))
	assert.Error(t, err)

	_, err = ParseStatements([]byte("= 1"))
	assert.Error(t, err)
}
