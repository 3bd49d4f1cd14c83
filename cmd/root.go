// Copyright © 2026 The linefold authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linefold/linefold/linewrap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linefold",
	Short: "linefold — one argument per line source reformatter",
	Long: `linefold reformats bracketed source constructs so each element sits on
its own line with a trailing comma and the closing bracket aligned under
the opening line. Blocks whose elements fit back on one line are folded
together again.

Getting started:
  linefold fmt file.py             Reformat whole files block by block
  linefold wrap --line 3 file.py   Rewrap the construct at a single line
  linefold play                    Try wrap settings interactively
  linefold lsp                     Start the language server

How wrapping works:
  A line longer than the text width whose head ends in an opening
  bracket is split: the head stays put, each comma-separated element
  moves to its own line indented one shift past the head, and the
  closing bracket lands on a line of its own. The reverse applies to an
  existing multi-line block whose elements fit within the width when
  joined: it collapses back to a single line. Lines that match neither
  shape are left alone.

Configuration:
  The text width and shift width come from flags, from the LINEFOLD_*
  environment, or from the config file. Settings cascade in that order.

More information:
  Source code:     https://github.com/linefold/linefold`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.linefold.yaml)")
	rootCmd.PersistentFlags().Int("textwidth", 79,
		"Maximum line length before a construct is split.")
	rootCmd.PersistentFlags().Int("shiftwidth", 4,
		"Indentation added to wrapped elements.")

	_ = viper.BindPFlag("textwidth", rootCmd.PersistentFlags().Lookup("textwidth"))
	_ = viper.BindPFlag("shiftwidth", rootCmd.PersistentFlags().Lookup("shiftwidth"))
}

// wrapConfig assembles the wrap settings from flags, environment, and
// the config file.
func wrapConfig() *linewrap.Config {
	cfg := linewrap.DefaultConfig()
	if v := viper.GetInt("textwidth"); v > 0 {
		cfg.TextWidth = v
	}
	if v := viper.GetInt("shiftwidth"); v > 0 {
		cfg.ShiftWidth = v
	}
	return cfg
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".linefold" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".linefold")
	}

	viper.SetEnvPrefix("linefold")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
