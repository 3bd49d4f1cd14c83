// Copyright © 2026 The linefold authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/linefold/linefold/lsp"
)

var (
	lspStdio bool
	lspPort  int
)

var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the Language Server Protocol server",
	Long: `Start an LSP server that reformats source as you type.

The server implements textDocument/formatting for whole-document
formatting and textDocument/onTypeFormatting for on-the-fly wrapping:
typing a comma or closing bracket rewraps the construct around the
cursor, splitting overlong lines and folding blocks that fit.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Examples:
  linefold lsp                       Start with stdio transport
  linefold lsp --stdio               Same as above (explicit)
  linefold lsp --port 7998           Start with TCP on port 7998

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "linefold lsp --stdio" for your source files.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		srv := lsp.New(lsp.WithWrapConfig(wrapConfig()))

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			log.Printf("linefold LSP server listening on %s", addr)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			if err := srv.RunStdio(); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)

	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
}
