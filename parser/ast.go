// Copyright © 2026 The linefold authors

package parser

// Node is one element of a parsed statement.
type Node interface {
	node()
}

// Ident is a bare, possibly dotted, name.
type Ident struct {
	Name string
}

// Literal is a number, string, or other terminal kept verbatim.
type Literal struct {
	Text string
}

// Call is a function call.
type Call struct {
	Func string
	Args []Node
}

// Keyword is a name=value argument inside a call.
type Keyword struct {
	Name  string
	Value Node
}

// Star is a *args or **kwargs argument inside a call.
type Star struct {
	Marker string
	Value  Node
}

// Collection is a bracketed literal: a list, tuple, set, or dict.
type Collection struct {
	Open  string
	Close string
	Items []Node
}

// Pair is a key: value entry inside a dict literal.
type Pair struct {
	Key   Node
	Value Node
}

// Assign is a targets = value statement.
type Assign struct {
	Targets []string
	Value   Node
}

// Import is an import or from-import statement. Formatting emits one
// line per imported name.
type Import struct {
	Module string // empty for a plain import
	Names  []ImportName
}

// ImportName is one imported name with an optional alias.
type ImportName struct {
	Name  string
	Alias string
}

func (Ident) node()      {}
func (Literal) node()    {}
func (Call) node()       {}
func (Keyword) node()    {}
func (Star) node()       {}
func (Collection) node() {}
func (Pair) node()       {}
func (Assign) node()     {}
func (Import) node()     {}
