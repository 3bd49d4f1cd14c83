// Copyright © 2026 The linefold authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linefold/linefold/buffer"
	"github.com/linefold/linefold/linewrap"
)

var (
	wrapLine   int
	wrapCol    int
	wrapChar   string
	wrapCount  int
	wrapWrite  bool
	wrapCursor bool
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [flags] [file]",
	Short: "Rewrap the construct at a single line",
	Long: `Apply one wrap operation to a file or stdin and print the result.

With --line alone, the line is split into one element per line if it
exceeds the text width and its head ends in an opening bracket. With
--count, the block of that many lines starting at --line is folded back
onto one line when its elements fit, or rewrapped when they do not.
Lines that match neither shape pass through unchanged.

Examples:
  linefold wrap --line 3 file.py             Split line 3 if overlong
  linefold wrap --line 3 --count 5 file.py   Rewrap the 5-line block
  linefold wrap --line 1 --col 9 --char , f  Report the cursor after a
                                             "," typed at column 9
  cat file.py | linefold wrap --line 2       Read from stdin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWrap(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runWrap(cmd *cobra.Command, args []string) error {
	var (
		src  []byte
		path string
		err  error
	)
	if len(args) == 1 {
		path = args[0]
		src, err = os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	buf := buffer.FromText(string(src))
	ch := linewrap.Change{
		Line:      wrapLine,
		LineCount: wrapCount,
		Inserted:  wrapChar,
		Cursor:    linewrap.Cursor{Line: wrapLine, Col: wrapCol},
	}
	if lines := buf.Lines(wrapLine, wrapLine); len(lines) == 1 {
		ch.Indent = linewrap.IndentOf(lines[0])
		if ch.Cursor.Col <= 0 {
			ch.Cursor.Col = len(lines[0])
		}
	}

	eng := linewrap.New(buf, wrapConfig())
	eng.Reformat(cmd.Context(), ch)

	out := buf.Text()
	if strings.HasSuffix(string(src), "\n") {
		out += "\n"
	}

	if wrapCursor {
		cur := buf.Cursor()
		fmt.Fprintf(os.Stderr, "cursor %d:%d\n", cur.Line, cur.Col)
	}

	if wrapWrite && path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return os.WriteFile(path, []byte(out), info.Mode().Perm())
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func init() {
	rootCmd.AddCommand(wrapCmd)

	wrapCmd.Flags().IntVar(&wrapLine, "line", 0,
		"Line number the change happened on (1-based).")
	wrapCmd.Flags().IntVar(&wrapCol, "col", 0,
		"Column of the last typed character (1-based, default end of line).")
	wrapCmd.Flags().StringVar(&wrapChar, "char", "",
		"Character just typed, used for cursor placement.")
	wrapCmd.Flags().IntVar(&wrapCount, "count", 0,
		"Number of lines in the block to rewrap (0 treats --line alone).")
	wrapCmd.Flags().BoolVarP(&wrapWrite, "write", "w", false,
		"Write result to (source) file instead of stdout.")
	wrapCmd.Flags().BoolVar(&wrapCursor, "cursor", false,
		"Print the resulting cursor position to stderr.")
	_ = wrapCmd.MarkFlagRequired("line")
}
