/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/resolvewith/cmd/render"
	"bennypowers.dev/resolvewith/internal/cli"
	resolvelib "bennypowers.dev/resolvewith/resolve"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier...>",
	Short: "Resolve module specifiers",
	Long: `Resolve each specifier against --base and print one result per line:
a file URL, a node: identifier, or null when nothing matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, table, markdown, json")
}

// Result is one resolved specifier. An empty Resolved is a miss.
type Result struct {
	Specifier string
	Resolved  string
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	r, err := cli.NewResolver()
	if err != nil {
		return err
	}

	results, failures := resolveAll(r, args, cli.Base(r.WorkingDir()), cmd.ErrOrStderr())

	switch format {
	case "json":
		err = outputJSON(cmd.OutOrStdout(), results)
	case "table":
		err = render.Table(cmd.OutOrStdout(), rows(results))
	case "markdown":
		err = render.Markdown(cmd.OutOrStdout(), rows(results), render.MarkdownOptions{})
	default:
		err = outputText(cmd.OutOrStdout(), results)
	}
	if err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d specifiers could not be resolved", failures, len(args))
	}
	return nil
}

// resolveAll resolves every specifier, reporting errors to errOut and
// leaving them out of the results.
func resolveAll(r *resolvelib.Resolver, specs []string, base string, errOut io.Writer) ([]Result, int) {
	results := make([]Result, 0, len(specs))
	failures := 0
	for _, spec := range specs {
		resolved, err := r.Resolve(spec, base)
		if err != nil {
			fmt.Fprintf(errOut, "Error resolving %q: %v\n", spec, err)
			failures++
			continue
		}
		results = append(results, Result{Specifier: spec, Resolved: resolved})
	}
	return results, failures
}

func rows(results []Result) []render.Row {
	out := make([]render.Row, 0, len(results))
	for _, res := range results {
		out = append(out, render.Row{Name: res.Specifier, Value: render.ValueOrNull(res.Resolved)})
	}
	return out
}

func outputText(w io.Writer, results []Result) error {
	return render.Values(w, rows(results))
}

func outputJSON(w io.Writer, results []Result) error {
	type resultOutput struct {
		Specifier string  `json:"specifier"`
		Resolved  *string `json:"resolved"`
	}

	output := make([]resultOutput, 0, len(results))
	for _, res := range results {
		out := resultOutput{Specifier: res.Specifier}
		if res.Resolved != "" {
			out.Resolved = &res.Resolved
		}
		output = append(output, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
