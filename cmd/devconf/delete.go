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
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <section> <entry>",
		Aliases: []string{"del"},
		Short:   "Remove a configuration entry",
		Long: `The delete command removes every entry with the given name from the
section, leaving comments and free text untouched.

Example:
  devconf delete drive address`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), args[0], args[1])
		},
	}
}

func runDelete(ctx context.Context, section, entry string) error {
	path := storePath()
	st, err := conf.Open(path)
	if err != nil {
		return err
	}
	if !st.Delete(section, entry) {
		st.Close()
		return fmt.Errorf("delete %s/%s: %w", section, entry, conf.ErrNotFound)
	}
	log.Debugf(ctx, "removed %s/%s from %s", section, entry, path)
	if err := st.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
