/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package exports provides the exports command.
package exports

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/resolvewith/cmd/render"
	exportslib "bennypowers.dev/resolvewith/exports"
	rwfs "bennypowers.dev/resolvewith/fs"
	"bennypowers.dev/resolvewith/internal/cli"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/resolve"
)

// Cmd is the exports cobra command.
var Cmd = &cobra.Command{
	Use:   "exports <package>",
	Short: "List the subpaths a package exports",
	Long: `List every subpath an installed package exposes and the file it loads,
using the configured conditions. Wildcard entries are expanded against the
files in the package. Packages without "exports" list their main entry.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, markdown, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	r, err := cli.NewResolver()
	if err != nil {
		return err
	}

	entries, err := List(rwfs.NewOSFileSystem(), r, args[0], cli.Base(r.WorkingDir()))
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), entries)
	case "markdown":
		return render.Markdown(cmd.OutOrStdout(), rows(entries), render.MarkdownOptions{
			NameHeader:  "Subpath",
			ValueHeader: "Target",
		})
	default:
		return outputText(cmd.OutOrStdout(), entries)
	}
}

// List returns the entries of the package name as installed from base.
func List(filesystem rwfs.FileSystem, r *resolve.Resolver, name, base string) ([]exportslib.Entry, error) {
	pkgDir, err := r.PackageDir(name, base)
	if err != nil {
		return nil, err
	}
	if pkgDir == "" {
		return nil, fmt.Errorf("package %q not found", name)
	}

	desc, err := r.Descriptor(pkgDir)
	if err != nil {
		return nil, err
	}

	if !desc.HasExports() {
		found, err := r.ResolveDirectory(pkgDir)
		if err != nil || found == "" {
			return nil, err
		}
		return []exportslib.Entry{{Key: ".", Target: "./" + relative(found, pkgDir)}}, nil
	}

	return exportslib.Enumerate(rwfs.Sub(filesystem, pkgDir), desc.Exports, r.Conditions())
}

func relative(p, dir string) string {
	if paths.Within(p, dir) && len(p) > len(dir) {
		return p[len(dir)+1:]
	}
	return p
}

func rows(entries []exportslib.Entry) []render.Row {
	out := make([]render.Row, 0, len(entries))
	for _, e := range entries {
		out = append(out, render.Row{Name: e.Key, Value: e.Target})
	}
	return out
}

func outputText(w io.Writer, entries []exportslib.Entry) error {
	return render.Table(w, rows(entries))
}

func outputJSON(w io.Writer, entries []exportslib.Entry) error {
	type entryOutput struct {
		Subpath string `json:"subpath"`
		Target  string `json:"target"`
	}

	output := make([]entryOutput, 0, len(entries))
	for _, e := range entries {
		output = append(output, entryOutput{Subpath: e.Key, Target: e.Target})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
