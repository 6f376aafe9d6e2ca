// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/spf13/cobra"
)

func newGenreCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genre",
		Short: "Genre management commands",
	}

	cmd.AddCommand(newGenreAddCmd(e))
	cmd.AddCommand(newGenreListCmd(e))

	return cmd
}

func newGenreAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a genre",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return e.withServices(cmd, func(_ *store.Storages, services *service.Services) error {
				genre, err := services.CatalogService.CreateGenre(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("adding genre %q: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", genre.ID, genre.Name)
				return nil
			})
		},
	}
}

func newGenreListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withServices(cmd, func(_ *store.Storages, services *service.Services) error {
				genres, err := services.CatalogService.Genres(cmd.Context())
				if err != nil {
					return err
				}
				for _, g := range genres {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", g.ID, g.Name)
				}
				return nil
			})
		},
	}
}
