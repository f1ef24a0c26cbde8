/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package paths provides the paths command.
package paths

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/resolvewith/internal/cli"
)

// Cmd is the paths cobra command.
var Cmd = &cobra.Command{
	Use:   "paths [dir]",
	Short: "List node_modules directories searched from a location",
	Long: `List, nearest first, the node_modules directories a bare specifier is
looked up in from dir (default: --base, then the working directory).
Directories are listed whether or not they exist.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	r, err := cli.NewResolver()
	if err != nil {
		return err
	}

	base := cli.Base(r.WorkingDir())
	if len(args) == 1 {
		base = args[0]
	}

	dir, err := r.BaseDir(base)
	if err != nil {
		return err
	}

	for _, candidate := range r.NodeModulesPaths(dir) {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
	return nil
}
