// Copyright © 2026 The linefold authors

/*
Package parser parses the small statement grammar handled by the block
formatter.

	stmt   := <from-import> | <import> | <assign> | <expr>
	assign := <name> (',' <name>)* '=' <expr>
	expr   := <call> | <term> | <list> | <tuple> | <brace>
	call   := <name> '(' (<arg> (',' <arg>)*)? ','? ')'
	arg    := ('*' | '**') <expr> | <name> '=' <expr> | <expr>
	term   := <number> | <string> | <name>

Dict and set literals share the <brace> production; entries with a ':'
become pairs. Parsing is whitespace-insensitive, so a statement may span
multiple physical lines.
*/
package parser

import (
	"fmt"

	parsec "github.com/prataprc/goparsec"
)

// ParseStatements parses source text into a sequence of statements. It
// fails when any input remains unparsed.
func ParseStatements(text []byte) ([]Node, error) {
	s := parsec.NewScanner(text)
	p := newStatementParser()

	var out []Node
	root, s := p(s)
	for root != nil {
		n, ok := root.(Node)
		if !ok {
			return nil, fmt.Errorf("unexpected parse node %T", root)
		}
		out = append(out, n)
		root, s = p(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		rest, _ := s.Match(`.{1,16}`)
		return nil, fmt.Errorf("unparsed source near %q", string(rest))
	}
	return out, nil
}

func newStatementParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openSq := parsec.Atom("[", "OPENSQ")
	closeSq := parsec.Atom("]", "CLOSESQ")
	openBr := parsec.Atom("{", "OPENBR")
	closeBr := parsec.Atom("}", "CLOSEBR")
	comma := parsec.Atom(",", "COMMA")
	colon := parsec.Atom(":", "COLON")
	assign := parsec.Atom("=", "ASSIGN")
	dstar := parsec.Atom("**", "DSTAR")
	star := parsec.Atom("*", "STAR")
	importTok := parsec.Atom("import", "IMPORT")
	fromTok := parsec.Atom("from", "FROM")
	asTok := parsec.Atom("as", "AS")

	number := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "NUMBER")
	sqstring := parsec.Token(`'(?:[^'\\]|\\.)*'`, "SQSTRING")
	name := parsec.Token(`[A-Za-z_][A-Za-z0-9_.]*`, "NAME")

	term := parsec.OrdChoice(termNode, number, parsec.String(), sqstring, name)

	var expr parsec.Parser // forward declaration allows recursive parsing

	kwarg := parsec.And(kwargNode, name, assign, &expr)
	starArg := parsec.And(starNode, parsec.OrdChoice(first, dstar, star), &expr)
	argItem := parsec.OrdChoice(first, starArg, kwarg, &expr)
	args := parsec.Kleene(nil, argItem, comma)

	call := parsec.And(callNode, name, openP, args, parsec.Maybe(nil, comma), closeP)

	elems := parsec.Kleene(nil, &expr, comma)
	pair := parsec.And(pairNode, &expr, colon, &expr)
	braceItem := parsec.OrdChoice(first, pair, &expr)
	braceItems := parsec.Kleene(nil, braceItem, comma)

	list := parsec.And(collNode("[", "]"), openSq, elems, parsec.Maybe(nil, comma), closeSq)
	tuple := parsec.And(collNode("(", ")"), openP, elems, parsec.Maybe(nil, comma), closeP)
	brace := parsec.And(collNode("{", "}"), openBr, braceItems, parsec.Maybe(nil, comma), closeBr)

	expr = parsec.OrdChoice(first, call, term, list, tuple, brace)

	importName := parsec.And(importNameNode, name, parsec.Maybe(first, parsec.And(aliasNode, asTok, name)))
	importNames := parsec.Many(nil, importName, comma)
	fromImport := parsec.And(fromImportNode, fromTok, name, importTok, importNames)
	plainImport := parsec.And(plainImportNode, importTok, importNames)

	targets := parsec.Many(nil, name, comma)
	assignStmt := parsec.And(assignNode, targets, assign, &expr)

	return parsec.OrdChoice(first, fromImport, plainImport, assignStmt, &expr)
}

// first passes through the single node an OrdChoice produced.
func first(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func termNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	switch t := nodes[0].(type) {
	case string:
		// parsec.String() yields the raw source text, quotes included.
		return Literal{Text: t}
	case *parsec.Terminal:
		if t.Name == "NAME" {
			return Ident{Name: t.Value}
		}
		return Literal{Text: t.Value}
	}
	return nil
}

func kwargNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	v, ok := nodes[2].(Node)
	if !ok {
		return nil
	}
	return Keyword{Name: nodes[0].(*parsec.Terminal).Value, Value: v}
}

func starNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	marker, ok := nodes[0].(*parsec.Terminal)
	if !ok {
		return nil
	}
	v, ok := nodes[1].(Node)
	if !ok {
		return nil
	}
	return Star{Marker: marker.Value, Value: v}
}

func callNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	items, ok := nodeList(nodes[2])
	if !ok {
		return nil
	}
	return Call{Func: nodes[0].(*parsec.Terminal).Value, Args: items}
}

func pairNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	k, ok := nodes[0].(Node)
	if !ok {
		return nil
	}
	v, ok := nodes[2].(Node)
	if !ok {
		return nil
	}
	return Pair{Key: k, Value: v}
}

func collNode(open, close string) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		items, ok := nodeList(nodes[1])
		if !ok {
			return nil
		}
		return Collection{Open: open, Close: close, Items: items}
	}
}

func assignNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	lis, ok := nodes[0].([]parsec.ParsecNode)
	if !ok {
		return nil
	}
	targets := make([]string, 0, len(lis))
	for _, c := range lis {
		term, ok := c.(*parsec.Terminal)
		if !ok {
			return nil
		}
		targets = append(targets, term.Value)
	}
	v, ok := nodes[2].(Node)
	if !ok {
		return nil
	}
	return Assign{Targets: targets, Value: v}
}

// aliasNode keeps just the name following "as".
func aliasNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	return nodes[1]
}

func importNameNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	// With a callback, Maybe passes the alias terminal through unwrapped;
	// an absent alias arrives as MaybeNone and fails the assertion.
	in := ImportName{Name: nodes[0].(*parsec.Terminal).Value}
	if term, ok := nodes[1].(*parsec.Terminal); ok {
		in.Alias = term.Value
	}
	return in
}

func plainImportNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	return importStmt("", nodes[1])
}

func fromImportNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	return importStmt(nodes[1].(*parsec.Terminal).Value, nodes[3])
}

func importStmt(module string, names parsec.ParsecNode) parsec.ParsecNode {
	lis, ok := names.([]parsec.ParsecNode)
	if !ok {
		return nil
	}
	imp := Import{Module: module}
	for _, c := range lis {
		name, ok := c.(ImportName)
		if !ok {
			return nil
		}
		imp.Names = append(imp.Names, name)
	}
	return imp
}

// nodeList unpacks a Kleene result into typed nodes.
func nodeList(n parsec.ParsecNode) ([]Node, bool) {
	lis, ok := n.([]parsec.ParsecNode)
	if !ok {
		return nil, false
	}
	out := make([]Node, 0, len(lis))
	for _, c := range lis {
		node, ok := c.(Node)
		if !ok {
			return nil, false
		}
		out = append(out, node)
	}
	return out, true
}
