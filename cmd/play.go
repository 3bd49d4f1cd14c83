// Copyright © 2026 The linefold authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/linefold/linefold/play"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Try wrap settings interactively",
	Long: `Start an interactive playground for the line reformatter.

Each line you type is run through the wrap engine and printed back.
Line editing and in-session command history are supported via readline.
Use Ctrl-D to exit.

Example session:
  play> foo(aa, bb, cc)
  foo(aa, bb, cc)
  play> :width 12
  play> foo(aa, bb, cc)
  foo(
      aa,
      bb,
      cc,
  )
  play> :fmt x = {'a': 1}
  x = {'a': 1}
  play> :quit`,
	Run: func(cmd *cobra.Command, args []string) {
		play.Run(filepath.Base(os.Args[0])+"> ", play.WithConfig(wrapConfig()))
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
