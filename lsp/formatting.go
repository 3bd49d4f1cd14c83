// Copyright © 2026 The linefold authors

package lsp

import (
	"context"
	"strings"

	"github.com/tliron/glsp"

	"github.com/linefold/linefold/buffer"
	"github.com/linefold/linefold/formatter"
	"github.com/linefold/linefold/linewrap"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentFormatting handles textDocument/formatting requests. It
// formats the document content with the block formatter and returns a
// single whole-document text edit, or nil if no changes are needed.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	content := doc.Snapshot()
	if content == "" {
		return nil, nil
	}

	cfg := &formatter.Config{
		Width:      s.fmtCfg.Width,
		IndentSize: s.fmtCfg.IndentSize,
	}
	if tabSize, ok := params.Options["tabSize"]; ok {
		switch v := tabSize.(type) {
		case float64:
			if v > 0 {
				cfg.IndentSize = int(v)
			}
		case int:
			if v > 0 {
				cfg.IndentSize = v
			}
		}
	}

	formatted, err := formatter.Format([]byte(content), cfg)
	if err != nil {
		// Formatting problems are not surfaced as errors so the editor
		// doesn't show a dialog for incomplete code.
		return nil, nil
	}

	if string(formatted) == content {
		return nil, nil
	}
	return []protocol.TextEdit{
		{
			Range:   fullDocumentRange(content),
			NewText: string(formatted),
		},
	}, nil
}

// textDocumentOnTypeFormatting handles textDocument/onTypeFormatting
// requests. The typed character and its position drive one reformat
// engine invocation over the document; the result, when the buffer
// changed, is a single whole-document text edit.
func (s *Server) textDocumentOnTypeFormatting(_ *glsp.Context, params *protocol.DocumentOnTypeFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	content := doc.Snapshot()
	lines := doc.Lines()

	line := int(params.Position.Line) + 1
	col := int(params.Position.Character) + 1
	if line < 1 || line > len(lines) {
		return nil, nil
	}

	buf := buffer.New(lines...)
	eng := linewrap.New(buf, s.wrapCfg)
	eng.Reformat(context.Background(), linewrap.Change{
		Line:     line,
		Inserted: params.Ch,
		Cursor:   linewrap.Cursor{Line: line, Col: col},
		Indent:   linewrap.IndentOf(lines[line-1]),
	})

	newText := buf.Text()
	if strings.HasSuffix(content, "\n") {
		newText += "\n"
	}
	if newText == content {
		return nil, nil
	}
	return []protocol.TextEdit{
		{
			Range:   fullDocumentRange(content),
			NewText: newText,
		},
	}, nil
}

// fullDocumentRange returns a range spanning all of content.
func fullDocumentRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	lastLen := len(lines[len(lines)-1])
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      safeUint(len(lines) - 1),
			Character: safeUint(lastLen),
		},
	}
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col are always small positive ints
}
