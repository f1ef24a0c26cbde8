/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package imports provides the imports command.
package imports

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/resolvewith/cmd/render"
	rwfs "bennypowers.dev/resolvewith/fs"
	importslib "bennypowers.dev/resolvewith/imports"
	"bennypowers.dev/resolvewith/internal/cli"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/resolve"
)

// Cmd is the imports cobra command.
var Cmd = &cobra.Command{
	Use:   "imports <file...>",
	Short: "Resolve the imports of JavaScript files",
	Long: `Scan JavaScript files for import declarations, re-exports, import()
expressions and require() calls, and resolve each specifier from the file
that contains it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, markdown, json")
	Cmd.Flags().Bool("unresolved", false, "Only show imports that do not resolve")
}

// Resolved is one import with its resolution result.
type Resolved struct {
	File string `json:"file"`
	importslib.Import
	Resolved *string `json:"resolved"`
	Error    string  `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	unresolved, _ := cmd.Flags().GetBool("unresolved")

	r, err := cli.NewResolver()
	if err != nil {
		return err
	}
	filesystem := rwfs.NewOSFileSystem()

	var all []Resolved
	var failures int
	for _, file := range args {
		results, err := ScanFile(filesystem, r, paths.Abs(paths.ToPosix(file), r.WorkingDir()))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error scanning %s: %v\n", file, err)
			failures++
			continue
		}
		all = append(all, results...)
	}

	if unresolved {
		all = filterUnresolved(all)
	}

	switch format {
	case "json":
		err = outputJSON(cmd.OutOrStdout(), all)
	case "markdown":
		err = render.Markdown(cmd.OutOrStdout(), rows(all, r.WorkingDir()), render.MarkdownOptions{
			IncludeTOC: len(args) > 1,
		})
	default:
		err = outputText(cmd.OutOrStdout(), all)
	}
	if err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files could not be scanned", failures, len(args))
	}
	return nil
}

// ScanFile scans file and resolves each import against it.
func ScanFile(filesystem rwfs.FileSystem, r *resolve.Resolver, file string) ([]Resolved, error) {
	src, err := filesystem.ReadFile(file)
	if err != nil {
		return nil, err
	}

	found, err := importslib.Scan(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	results := make([]Resolved, 0, len(found))
	for _, imp := range found {
		res := Resolved{File: file, Import: imp}
		resolved, err := r.Resolve(imp.Specifier, file)
		switch {
		case err != nil:
			res.Error = err.Error()
		case resolved != "":
			res.Resolved = &resolved
		}
		results = append(results, res)
	}
	return results, nil
}

func filterUnresolved(results []Resolved) []Resolved {
	filtered := make([]Resolved, 0)
	for _, res := range results {
		if res.Resolved == nil {
			filtered = append(filtered, res)
		}
	}
	return filtered
}

func (res Resolved) value() string {
	switch {
	case res.Error != "":
		return "error: " + res.Error
	case res.Resolved != nil:
		return *res.Resolved
	default:
		return render.Null
	}
}

// rows groups results by file, relative to dir where possible.
func rows(results []Resolved, dir string) []render.Row {
	out := make([]render.Row, 0, len(results))
	for _, res := range results {
		group := res.File
		if paths.Within(res.File, dir) && len(res.File) > len(dir) {
			group = strings.TrimPrefix(res.File[len(dir):], "/")
		}
		out = append(out, render.Row{
			Name:  res.Specifier,
			Kind:  string(res.Kind),
			Value: res.value(),
			Group: group,
		})
	}
	return out
}

func outputText(w io.Writer, results []Resolved) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s:%d\t%-8s\t%s\t%s\n", res.File, res.Line, res.Kind, res.Specifier, res.value()); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, results []Resolved) error {
	if results == nil {
		results = []Resolved{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
