// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"

	"github.com/retrobus/devconf/conf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List sections in file order",
		Long: `The sections command lists the sections of the configuration file in the
order they appear. The global section is shown as <global> when it holds
any entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(cmd.Context())
		},
	}
}

func runSections(ctx context.Context) error {
	st, err := conf.Open(storePath())
	if err != nil {
		return err
	}
	defer st.Close()
	if len(st.Keys("")) > 0 {
		fmt.Println("<global>")
	}
	for _, name := range st.Sections() {
		fmt.Println(name)
	}
	return nil
}
