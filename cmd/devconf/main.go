// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

// devconf inspects and edits the configuration files used by the retrobus
// device control tools.
package main

import (
	"context"
	"os"

	"github.com/retrobus/devconf/conf"
	"github.com/retrobus/devconf/envvar"
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "devconf",
	Short: "Inspect and edit retrobus configuration files",
	Long: `devconf reads and edits the INI-style configuration files used by the
retrobus device control tools. Edits preserve comments and unrecognized
lines; the file is rewritten through a temporary file only when something
changed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "file", "f", "", "Configuration file (default: the per-user location)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func initLogging() {
	minLevel := log.Warn
	if verbose || envvar.Bool("DEVCONF_VERBOSE") {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "devconf: ", log.StdFlags, nil),
	})
}

// storePath resolves the file the subcommands operate on.
func storePath() string {
	if configPath != "" {
		return configPath
	}
	return conf.DefaultPath()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}
