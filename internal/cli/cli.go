/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli builds resolvers for the subcommands from the config file,
// flags and RESOLVE_* environment variables, in increasing precedence.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/resolvewith/builtin"
	"bennypowers.dev/resolvewith/config"
	rwfs "bennypowers.dev/resolvewith/fs"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/resolve"
)

// EnvPrefix namespaces environment overrides, e.g. RESOLVE_BASE.
const EnvPrefix = "RESOLVE"

// Keys shared by flags, environment variables and viper lookups.
const (
	KeyBase         = "base"
	KeyRoot         = "root"
	KeyConditions   = "condition"
	KeyExtensions   = "extension"
	KeyBuiltins     = "builtin"
	KeyPreferModule = "prefer-module"
	KeyStrict       = "strict"
	KeyProjectRoot  = "project-root"
	KeyVerbose      = "verbose"
)

// BindFlags registers the global flags on cmd and binds them into viper.
func BindFlags(cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.StringP(KeyBase, "b", "", "Base file, directory or file URL to resolve from (default: working directory)")
	flags.String(KeyRoot, "", "Directory holding .config/resolve.{yaml,yml,json} (default: working directory)")
	flags.StringSlice(KeyConditions, nil, "Exports condition priority, e.g. --condition import,default")
	flags.StringSlice(KeyExtensions, nil, "File extensions to probe, in order")
	flags.StringSlice(KeyBuiltins, nil, "Extra core module names")
	flags.Bool(KeyPreferModule, false, `Resolve directories through "module" before "main"`)
	flags.Bool(KeyStrict, false, "Fail on malformed package.json files")
	flags.String(KeyProjectRoot, "", "Root of the resolver's own project tree")
	flags.BoolP(KeyVerbose, "v", false, "Log resolution steps to stderr")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return viper.BindPFlags(flags)
}

// RootDir returns the absolute config root.
func RootDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	wd = paths.ToPosix(wd)
	root := viper.GetString(KeyRoot)
	if root == "" {
		return paths.Clean(wd), nil
	}
	return paths.Abs(root, wd), nil
}

// Options loads the config under root and applies flag and environment
// overrides on top of it.
func Options(filesystem rwfs.FileSystem, root string) (resolve.Options, error) {
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return resolve.Options{}, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	opts := cfg.Options(root)

	if viper.IsSet(KeyConditions) {
		opts.Conditions = viper.GetStringSlice(KeyConditions)
	}
	if viper.IsSet(KeyExtensions) {
		opts.Extensions = viper.GetStringSlice(KeyExtensions)
	}
	if viper.IsSet(KeyBuiltins) {
		registry := opts.Builtins
		if registry == nil {
			registry = builtin.Default()
		}
		opts.Builtins = registry.With(viper.GetStringSlice(KeyBuiltins)...)
	}
	if viper.IsSet(KeyPreferModule) {
		opts.PreferModule = viper.GetBool(KeyPreferModule)
	}
	if viper.IsSet(KeyStrict) {
		opts.StrictDescriptors = viper.GetBool(KeyStrict)
	}
	if viper.IsSet(KeyProjectRoot) {
		opts.ProjectRoot = paths.Abs(viper.GetString(KeyProjectRoot), root)
	}

	return opts, nil
}

// NewResolver returns a resolver over the OS filesystem configured for the
// current invocation.
func NewResolver() (*resolve.Resolver, error) {
	root, err := RootDir()
	if err != nil {
		return nil, err
	}
	filesystem := rwfs.NewOSFileSystem()
	opts, err := Options(filesystem, root)
	if err != nil {
		return nil, err
	}
	return resolve.New(filesystem, opts)
}

// Base returns the --base value as an absolute path under root, so that it
// matches the cache keys of configured overrides. File URLs and the empty
// default pass through unchanged.
func Base(root string) string {
	base := viper.GetString(KeyBase)
	if base == "" || paths.IsFileURL(base) {
		return base
	}
	return paths.Abs(paths.ToPosix(base), root)
}
