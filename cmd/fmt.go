// Copyright © 2026 The linefold authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/linefold/linefold/formatter"
)

var (
	fmtWrite      bool
	fmtDiff       bool
	fmtList       bool
	fmtWidth      int
	fmtIndentSize int
	fmtExcludes   []string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [files...]",
	Short: "Reformat source files block by block",
	Long: `Reformat source files, similar to gofmt for Go.

Splits each file into comment and code blocks. Comment blocks are
refilled to the text width. Code blocks are parsed and printed back one
statement at a time: a statement that fits stays on one line, and one
that does not gets one element per line with a trailing comma. Blocks
that fail to parse pass through untouched. The formatter is idempotent.

With no files, reads from stdin and writes to stdout.
With files, prints formatted output to stdout unless -w is given.

Modes:
  (default)   Print formatted code to stdout
  -w          Write result back to source file
  -d          Display a diff of changes
  -l          List files that would be changed

Examples:
  linefold fmt file.py               Print formatted output
  linefold fmt -w file.py            Format in place
  linefold fmt -w src/...            Format a directory tree in place
  linefold fmt -d file.py            Show what would change
  linefold fmt -l src/...            List files needing formatting
  cat file.py | linefold fmt         Format from stdin
  linefold fmt --width 72 file.py    Use a 72-column limit`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := formatter.DefaultConfig()
		cfg.Width = fmtWidth
		cfg.IndentSize = fmtIndentSize

		if len(args) == 0 {
			if err := fmtStdin(cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		expanded, err := expandArgs(args, fmtExcludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		exitCode := 0
		for _, path := range expanded {
			changed, err := fmtFile(path, cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				exitCode = 1
			} else if fmtList && changed {
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	},
}

func fmtStdin(cfg *formatter.Config) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	out, err := formatter.Format(src, cfg)
	if err != nil {
		return fmt.Errorf("<stdin>: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func fmtFile(path string, cfg *formatter.Config) (bool, error) {
	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	out, err := formatter.Format(src, cfg)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	changed := string(src) != string(out)

	if fmtList {
		if changed {
			fmt.Println(path)
		}
		return changed, nil
	}

	if fmtDiff {
		if changed {
			printUnifiedDiff(path, src, out)
		}
		return changed, nil
	}

	if fmtWrite {
		if !changed {
			return false, nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return false, fmt.Errorf("%s: %w", path, err)
		}
		return true, os.WriteFile(path, out, info.Mode().Perm())
	}

	// Default: print to stdout
	_, err = os.Stdout.Write(out)
	return changed, err
}

func printUnifiedDiff(path string, original, formatted []byte) {
	// Simple line-by-line diff output
	fmt.Printf("--- %s\n", path)
	fmt.Printf("+++ %s\n", path)

	origLines := splitLines(original)
	fmtLines := splitLines(formatted)

	i, j := 0, 0
	for i < len(origLines) || j < len(fmtLines) {
		if i < len(origLines) && j < len(fmtLines) && origLines[i] == fmtLines[j] {
			fmt.Printf(" %s\n", origLines[i])
			i++
			j++
		} else if i < len(origLines) {
			fmt.Printf("-%s\n", origLines[i])
			i++
		} else {
			fmt.Printf("+%s\n", fmtLines[j])
			j++
		}
	}
}

func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Write result to (source) file instead of stdout.")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false,
		"Display diffs instead of rewriting files.")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false,
		"List files whose formatting differs from linefold fmt's.")
	fmtCmd.Flags().IntVar(&fmtWidth, "width", 79,
		"Maximum line length.")
	fmtCmd.Flags().IntVar(&fmtIndentSize, "indent-size", 4,
		"Number of spaces per indentation level.")
	fmtCmd.Flags().StringArrayVar(&fmtExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
}
