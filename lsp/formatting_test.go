// Copyright © 2026 The linefold authors

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linefold/linefold/formatter"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentFormatting(t *testing.T) {
	s := New(WithFormatConfig(&formatter.Config{Width: 15, IndentSize: 4}))
	doc := openDoc(s, "file:///test/fmt.py", "foo(aaaa, bbbb, cccc)\n")

	edits, err := s.textDocumentFormatting(mockContext(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
		Options:      protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "foo(\n    aaaa,\n    bbbb,\n    cccc,\n)\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, edits[0].Range.Start)
}

func TestDocumentFormattingNoChanges(t *testing.T) {
	s := New()
	doc := openDoc(s, "file:///test/clean.py", "foo(1)\n")

	edits, err := s.textDocumentFormatting(mockContext(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
		Options:      protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	assert.Nil(t, edits)
}

func TestDocumentFormattingUnknownDocument(t *testing.T) {
	s := New()
	edits, err := s.textDocumentFormatting(mockContext(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test/missing.py"},
		Options:      protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	assert.Nil(t, edits)
}

func TestOnTypeFormattingExpandsOverlongLine(t *testing.T) {
	s := testServer()
	doc := openDoc(s, "file:///test/type.py", "foo(aa,bb,cc)\n")

	edits, err := s.textDocumentOnTypeFormatting(mockContext(), &protocol.DocumentOnTypeFormattingParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
			Position:     protocol.Position{Line: 0, Character: 8},
		},
		Ch:      ",",
		Options: protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "foo(\n  aa,\n  bb,\n  cc,\n)\n", edits[0].NewText)
}

func TestOnTypeFormattingUnderThresholdNoop(t *testing.T) {
	s := testServer()
	doc := openDoc(s, "file:///test/short.py", "foo(a)\n")

	edits, err := s.textDocumentOnTypeFormatting(mockContext(), &protocol.DocumentOnTypeFormattingParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
			Position:     protocol.Position{Line: 0, Character: 5},
		},
		Ch:      ")",
		Options: protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	assert.Nil(t, edits)
}

func TestOnTypeFormattingPositionOutOfRange(t *testing.T) {
	s := testServer()
	doc := openDoc(s, "file:///test/oob.py", "foo(a)\n")

	edits, err := s.textDocumentOnTypeFormatting(mockContext(), &protocol.DocumentOnTypeFormattingParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
			Position:     protocol.Position{Line: 9, Character: 0},
		},
		Ch:      ",",
		Options: protocol.FormattingOptions{},
	})
	require.NoError(t, err)
	assert.Nil(t, edits)
}
