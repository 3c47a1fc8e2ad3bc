// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"

	"github.com/retrobus/devconf/conf"
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <section> <entry>",
		Short: "Print a configuration value",
		Long: `The get command prints the value stored under a section and entry name.
Use an empty section name ("") to address the global section.

Example:
  devconf get drive address
  devconf get "" cable`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), args[0], args[1])
		},
	}
}

func runGet(ctx context.Context, section, entry string) error {
	path := storePath()
	log.Debugf(ctx, "reading %s", path)
	st, err := conf.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	value, err := st.Get(section, entry)
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", section, entry, err)
	}
	fmt.Println(value)
	return nil
}
