/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for resolvewith.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/resolvewith/cmd/exports"
	"bennypowers.dev/resolvewith/cmd/imports"
	"bennypowers.dev/resolvewith/cmd/paths"
	"bennypowers.dev/resolvewith/cmd/resolve"
	"bennypowers.dev/resolvewith/cmd/version"
	"bennypowers.dev/resolvewith/internal/cli"
	"bennypowers.dev/resolvewith/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resolvewith",
	Short: "Resolve JavaScript module specifiers to files",
	Long: `resolvewith resolves module specifiers the way Node.js does, returning
file URLs for relative paths, packages and "exports" subpaths, and node:
identifiers for core modules.

Settings are read from .config/resolve.{yaml,yml,json} under --root, then
overridden by RESOLVE_* environment variables and flags.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(cli.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.CheckErr(cli.BindFlags(rootCmd))

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(paths.Cmd)
	rootCmd.AddCommand(exports.Cmd)
	rootCmd.AddCommand(imports.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
