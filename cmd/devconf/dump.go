// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/retrobus/devconf/conf"
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

var dumpOutput string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Write to FILE instead of stdout (atomic replace)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Write the whole configuration file",
		Long: `The dump command serializes the configuration file, comments included, to
stdout or to a file. A file is replaced atomically: the dump is written to
a hidden temporary in the same directory and renamed over the target only
once it is complete.

Example:
  devconf dump
  devconf dump -o backup.conf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), dumpOutput)
		},
	}
}

func runDump(ctx context.Context, output string) error {
	st, err := conf.Open(storePath())
	if err != nil {
		return err
	}
	defer st.Close()

	if output == "" {
		_, err := st.WriteTo(os.Stdout)
		return err
	}

	pending, err := renameio.NewPendingFile(output)
	if err != nil {
		return fmt.Errorf("create pending dump file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log.Debugf(ctx, "cleanup pending dump file: %v", err)
		}
	}()
	if _, err := st.WriteTo(pending); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", output, err)
	}
	return nil
}
