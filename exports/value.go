/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package exports interprets the package.json "exports" field.
//
// An exports value is a tree of strings, condition objects and arrays of
// alternatives. Parse turns raw JSON into a Value and Resolve walks it for a
// requested subpath. Nothing here touches the filesystem.
package exports

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid indicates the exports field is not valid JSON.
var ErrInvalid = errors.New("invalid exports field")

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindNull is an explicit null, or an unusable scalar. It never resolves.
	KindNull Kind = iota
	// KindTarget is a target path string such as "./lib/index.js".
	KindTarget
	// KindConditions maps condition names ("import", "require", ...) to values.
	KindConditions
	// KindAlternatives is an ordered fallback list.
	KindAlternatives
	// KindSubpaths maps subpath keys ("." or "./x", possibly with one "*") to values.
	// It only occurs at the top level.
	KindSubpaths
)

func (k Kind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindConditions:
		return "conditions"
	case KindAlternatives:
		return "alternatives"
	case KindSubpaths:
		return "subpaths"
	default:
		return "null"
	}
}

// Value is one node of an exports tree.
type Value struct {
	Kind Kind

	// Target is set for KindTarget.
	Target string

	// Conditions is set for KindConditions.
	Conditions map[string]*Value

	// Alternatives is set for KindAlternatives.
	Alternatives []*Value

	// Subpaths is set for KindSubpaths.
	Subpaths map[string]*Value
}

// Target returns a string target value.
func Target(s string) *Value {
	return &Value{Kind: KindTarget, Target: s}
}

// Parse decodes a raw "exports" field. An object whose keys start with "."
// becomes a subpath map; any other object is a condition set.
func Parse(data []byte) (*Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return fromRaw(raw, true), nil
}

func fromRaw(raw any, top bool) *Value {
	switch v := raw.(type) {
	case string:
		return Target(v)
	case []any:
		alts := make([]*Value, 0, len(v))
		for _, item := range v {
			alts = append(alts, fromRaw(item, false))
		}
		return &Value{Kind: KindAlternatives, Alternatives: alts}
	case map[string]any:
		if top && hasSubpathKeys(v) {
			subpaths := make(map[string]*Value, len(v))
			for key, item := range v {
				if strings.HasPrefix(key, ".") {
					subpaths[key] = fromRaw(item, false)
				}
			}
			return &Value{Kind: KindSubpaths, Subpaths: subpaths}
		}
		conds := make(map[string]*Value, len(v))
		for key, item := range v {
			conds[key] = fromRaw(item, false)
		}
		return &Value{Kind: KindConditions, Conditions: conds}
	default:
		return &Value{Kind: KindNull}
	}
}

func hasSubpathKeys(m map[string]any) bool {
	for key := range m {
		if strings.HasPrefix(key, ".") {
			return true
		}
	}
	return false
}

// Entries returns the subpath map of a top-level value. A string, array or
// condition set is sugar for {".": value}.
func (v *Value) Entries() map[string]*Value {
	if v == nil {
		return nil
	}
	if v.Kind == KindSubpaths {
		return v.Subpaths
	}
	return map[string]*Value{".": v}
}
