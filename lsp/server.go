// Copyright © 2026 The linefold authors

// Package lsp implements a Language Server Protocol server exposing the
// linefold formatters: whole-document formatting and on-type reformatting
// of overlong bracketed lines.
package lsp

import (
	"os"

	"github.com/tliron/glsp"
	glspserver "github.com/tliron/glsp/server"

	"github.com/linefold/linefold/formatter"
	"github.com/linefold/linefold/linewrap"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const serverName = "linefold-lsp"

// Server is the linefold language server.
type Server struct {
	handler protocol.Handler
	glspSrv *glspserver.Server
	docs    *DocumentStore

	wrapCfg *linewrap.Config
	fmtCfg  *formatter.Config

	// exitFn is called on the LSP exit notification. Defaults to os.Exit.
	// Overridable for testing.
	exitFn func(int)
}

// Option configures the LSP server.
type Option func(*Server)

// WithWrapConfig overrides the on-type reformat thresholds.
func WithWrapConfig(cfg *linewrap.Config) Option {
	return func(s *Server) { s.wrapCfg = cfg }
}

// WithFormatConfig overrides the whole-document formatter configuration.
func WithFormatConfig(cfg *formatter.Config) Option {
	return func(s *Server) { s.fmtCfg = cfg }
}

// New creates a new linefold LSP server.
func New(opts ...Option) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		wrapCfg: linewrap.DefaultConfig(),
		fmtCfg:  formatter.DefaultConfig(),
		exitFn:  os.Exit,
	}
	for _, o := range opts {
		o(s)
	}

	s.handler = protocol.Handler{
		Initialize: s.initialize,
		Shutdown:   s.shutdown,
		Exit:       s.exit,
		SetTrace:   s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentFormatting:       s.textDocumentFormatting,
		TextDocumentOnTypeFormatting: s.textDocumentOnTypeFormatting,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts the server using stdio transport.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

// RunTCP starts the server listening on the given address.
func (s *Server) RunTCP(addr string) error {
	return s.glspSrv.RunTCP(addr)
}

// initialize handles the LSP initialize request.
func (s *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	// Override text document sync to full.
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(false)},
	}

	// On-type formatting fires on separators and closers, which are the
	// characters that complete an item or a construct.
	capabilities.DocumentOnTypeFormattingProvider = &protocol.DocumentOnTypeFormattingOptions{
		FirstTriggerCharacter: ",",
		MoreTriggerCharacter:  []string{")", "]", "}"},
	}

	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

// shutdown handles the LSP shutdown request.
func (s *Server) shutdown(_ *glsp.Context) error {
	return nil
}

// exit handles the LSP exit notification by terminating the process. We
// always exit with 0 since shutdown is handled gracefully.
func (s *Server) exit(_ *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// setTrace handles the $/setTrace notification (required by some clients).
func (s *Server) setTrace(_ *glsp.Context, _ *protocol.SetTraceParams) error {
	return nil
}

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.Open(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
	)
	return nil
}

// textDocumentDidChange handles the textDocument/didChange notification.
func (s *Server) textDocumentDidChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// With full sync, the last content change is the complete document.
	var content string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			content = c.Text
		}
	}

	s.docs.Change(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		content,
	)
	return nil
}

// textDocumentDidClose handles the textDocument/didClose notification.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(params.TextDocument.URI)
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
