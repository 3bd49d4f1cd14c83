// Copyright © 2026 The linefold authors

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"

	"github.com/linefold/linefold/linewrap"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// testServer creates a server with small thresholds for testing.
func testServer() *Server {
	return New(WithWrapConfig(&linewrap.Config{TextWidth: 8, ShiftWidth: 2}))
}

// openDoc opens a document in the test server and returns it.
func openDoc(s *Server, uri, content string) *Document {
	return s.docs.Open(uri, 1, content)
}

// mockContext returns a minimal glsp.Context for testing.
func mockContext() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {},
	}
}

func TestDocumentStore(t *testing.T) {
	s := testServer()

	doc := openDoc(s, "file:///test/a.py", "foo(1)")
	require.NotNil(t, s.docs.Get(doc.URI))
	assert.Equal(t, "foo(1)", s.docs.Get(doc.URI).Snapshot())

	s.docs.Change(doc.URI, 2, "foo(2)")
	assert.Equal(t, "foo(2)", s.docs.Get(doc.URI).Snapshot())
	assert.Equal(t, int32(2), s.docs.Get(doc.URI).Version)

	s.docs.Close(doc.URI)
	assert.Nil(t, s.docs.Get(doc.URI))
}

func TestDidOpenAndChange(t *testing.T) {
	s := testServer()

	err := s.textDocumentDidOpen(mockContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     "file:///test/b.py",
			Version: 1,
			Text:    "x = 1",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, s.docs.Get("file:///test/b.py"))

	err = s.textDocumentDidChange(mockContext(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///test/b.py"},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "x = 2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "x = 2", s.docs.Get("file:///test/b.py").Snapshot())
}

func TestDocumentLines(t *testing.T) {
	s := testServer()
	doc := openDoc(s, "file:///test/c.py", "one\ntwo\n")
	assert.Equal(t, []string{"one", "two"}, doc.Lines())
}
