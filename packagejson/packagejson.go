/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package packagejson reads package descriptors (package.json files).
package packagejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/resolvewith/exports"
)

// FileName is the conventional package descriptor file name.
const FileName = "package.json"

// ErrMalformed indicates a package.json that could not be decoded.
var ErrMalformed = errors.New("malformed package.json")

// Descriptor holds the fields of a package.json that affect resolution.
// Other keys are ignored.
type Descriptor struct {
	// Name is the package name, e.g. "@scope/pkg".
	Name string

	// Exports is the parsed "exports" field, or nil when absent or null.
	Exports *exports.Value

	// Main is the classic entry point.
	Main string

	// Module is the ESM entry point used by bundlers.
	Module string

	// Type is "module" or "commonjs" (empty means commonjs).
	Type string

	// Path is the file the descriptor was read from, when loaded from disk.
	Path string
}

type rawDescriptor struct {
	Name    string          `json:"name"`
	Exports json.RawMessage `json:"exports"`
	Main    string          `json:"main"`
	Module  string          `json:"module"`
	Type    string          `json:"type"`
}

// Parse decodes package.json content. Comments and trailing commas are
// tolerated.
func Parse(data []byte) (*Descriptor, error) {
	var raw rawDescriptor
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	desc := &Descriptor{
		Name:   raw.Name,
		Main:   raw.Main,
		Module: raw.Module,
		Type:   raw.Type,
	}

	if len(raw.Exports) > 0 && !bytes.Equal(bytes.TrimSpace(raw.Exports), []byte("null")) {
		exp, err := exports.Parse(raw.Exports)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		desc.Exports = exp
	}

	return desc, nil
}

// HasExports reports whether the package declares an "exports" field.
func (d *Descriptor) HasExports() bool {
	return d != nil && d.Exports != nil
}

// ClassicEntry returns "main", with "module" as a fallback or, if
// preferModule is set, as the first choice. "exports" is ignored.
func (d *Descriptor) ClassicEntry(preferModule bool) string {
	if d == nil {
		return ""
	}
	if preferModule && d.Module != "" {
		return d.Module
	}
	if d.Main != "" {
		return d.Main
	}
	return d.Module
}
