// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", e.buildInfo.Version)
			fmt.Fprintf(out, "Build date: %s\n", e.buildInfo.Date)
			fmt.Fprintf(out, "Build commit: %s\n", e.buildInfo.Commit)
		},
	}
}
