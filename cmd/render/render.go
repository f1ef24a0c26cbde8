/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Null is displayed for a specifier that does not resolve.
const Null = "null"

// Row holds computed display values for a single result.
type Row struct {
	Name  string // Specifier or exported subpath
	Kind  string // Import kind, or empty when not applicable
	Value string // Resolved URL, export target, or Null
	Group string // Markdown section, e.g. the scanned file
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	// NameHeader labels the first column. Defaults to "Specifier".
	NameHeader string
	// ValueHeader labels the last column. Defaults to "Resolved".
	ValueHeader string
	// IncludeTOC adds a linked list of groups before the tables.
	IncludeTOC bool
}

// ValueOrNull returns v, or Null when v is empty.
func ValueOrNull(v string) string {
	if v == "" {
		return Null
	}
	return v
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, kind, val int) {
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Kind) > kind {
			kind = len(r.Kind)
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// Table renders rows as aligned columns. The kind column is omitted when no
// row has a kind.
func Table(w io.Writer, rows []Row) error {
	nameW, kindW, _ := ColumnWidths(rows)
	for _, r := range rows {
		var err error
		if kindW > 0 {
			_, err = fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameW, r.Name, kindW, r.Kind, r.Value)
		} else {
			_, err = fmt.Fprintf(w, "%-*s  %s\n", nameW, r.Name, r.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Values renders just the values, one per line.
func Values(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables, one section per group in order
// of first appearance. Rows without a group share one untitled table.
func Markdown(w io.Writer, rows []Row, opts MarkdownOptions) error {
	if len(rows) == 0 {
		return nil
	}
	if opts.NameHeader == "" {
		opts.NameHeader = "Specifier"
	}
	if opts.ValueHeader == "" {
		opts.ValueHeader = "Resolved"
	}

	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			groupOrder = append(groupOrder, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	var sb strings.Builder
	if opts.IncludeTOC {
		for _, group := range groupOrder {
			if group == "" {
				continue
			}
			fmt.Fprintf(&sb, "- [%s](#%s)\n", group, slugify(group))
		}
		sb.WriteString("\n")
	}

	for i, group := range groupOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		if group != "" {
			fmt.Fprintf(&sb, "## %s\n\n", group)
		}
		writeTable(&sb, byGroup[group], opts)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTable(sb *strings.Builder, rows []Row, opts MarkdownOptions) {
	hasKind := false
	nameW, kindW, valW := len(opts.NameHeader), len("Kind"), len(opts.ValueHeader)
	for _, r := range rows {
		nameW = max(nameW, len(escapeCell(r.Name)))
		valW = max(valW, len(escapeCell(r.Value)))
		if r.Kind != "" {
			hasKind = true
			kindW = max(kindW, len(Heading(r.Kind)))
		}
	}

	if hasKind {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, opts.NameHeader, kindW, "Kind", valW, opts.ValueHeader)
		fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", kindW), strings.Repeat("-", valW))
		for _, r := range rows {
			fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, escapeCell(r.Name), kindW, Heading(r.Kind), valW, escapeCell(r.Value))
		}
		return
	}

	fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, opts.NameHeader, valW, opts.ValueHeader)
	fmt.Fprintf(sb, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	for _, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, escapeCell(r.Name), valW, escapeCell(r.Value))
	}
}

// escapeCell keeps a pipe inside a value from splitting the table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// slugify converts a heading to a URL-safe anchor ID.
// e.g., "/src/My File.js" -> "srcmy-filejs"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// Heading converts a kind such as "reexport" to Title Case.
func Heading(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
