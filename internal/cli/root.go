// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements storectl, the operator tool for the store
// database: schema migrations, admin rights and genres.
package cli

import (
	"os"

	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/models"
	"github.com/spf13/cobra"
)

// env is what every subcommand runs against. It is filled in by the root
// command before a subcommand runs.
type env struct {
	buildInfo models.AppBuildInfo

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

// NewRootCmd creates the storectl command tree. Configuration comes from
// the same environment variables and JSON file as the server.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	e := &env{buildInfo: buildInfo}

	rootCmd := &cobra.Command{
		Use:   "storectl",
		Short: "Operator tool for the game store",
		Long: `storectl manages the game store database.

It applies schema migrations, grants and revokes admin rights and
maintains the genre list. Settings are read from the server's
environment variables (APP_*, STORAGE_*, SERVER_*) and CONFIG file.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCmd(e))
	rootCmd.AddCommand(newPromoteCmd(e))
	rootCmd.AddCommand(newGenreCmd(e))
	rootCmd.AddCommand(newVersionCmd(e))

	return rootCmd
}

// Execute runs the root command
func Execute(buildInfo models.AppBuildInfo) {
	if err := NewRootCmd(buildInfo).Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the configuration. Logs go to stderr so that command output
// stays parseable.
func (e *env) load(cmd *cobra.Command) error {
	cfg, err := config.GetEnvConfig()
	if err != nil {
		return err
	}
	e.cfg = cfg

	l := logger.NewLogger("storectl", cfg.App.LogLevel)
	l.Logger = l.Output(cmd.ErrOrStderr())
	e.logger = l
	return nil
}

// withServices opens the storages, runs fn and closes them again.
func (e *env) withServices(cmd *cobra.Command, fn func(*store.Storages, *service.Services) error) error {
	if err := e.load(cmd); err != nil {
		return err
	}

	storages, err := store.NewStorages(cmd.Context(), e.cfg.Storage, e.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			e.logger.Error().Err(err).Msg("closing storages failed")
		}
	}()

	return fn(storages, service.NewServices(storages, *e.cfg, e.buildInfo, e.logger))
}
