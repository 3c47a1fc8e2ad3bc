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
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <entry> <value>",
		Short: "Set a configuration value",
		Long: `The set command stores a value under a section and entry name, creating
the file, the section, and the entry as needed.

Example:
  devconf set drive address 8
  devconf set "" cable usb`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), args[0], args[1], args[2])
		},
	}
}

func runSet(ctx context.Context, section, entry, value string) error {
	path := storePath()
	log.Debugf(ctx, "updating %s", path)
	st, err := conf.Create(path)
	if err != nil {
		return err
	}
	if err := st.Set(section, entry, value); err != nil {
		st.Close()
		return err
	}
	if err := st.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
