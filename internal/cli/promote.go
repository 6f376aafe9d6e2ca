// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/spf13/cobra"
)

func newPromoteCmd(e *env) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant (or with --revoke, take away) catalog admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			return e.withServices(cmd, func(_ *store.Storages, services *service.Services) error {
				if err := services.AuthService.SetAdmin(cmd.Context(), email, !revoke); err != nil {
					return fmt.Errorf("updating %s: %w", email, err)
				}

				if revoke {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is no longer an admin\n", email)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", email)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "Revoke admin rights instead of granting them")

	return cmd
}
