/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the resolver.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/resolvewith/builtin"
	"bennypowers.dev/resolvewith/cache"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/resolve"
)

// ErrInvalid indicates a config file whose values cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config represents the resolver configuration.
type Config struct {
	// Extensions replaces the probed file extensions, in order.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Conditions replaces the exports condition priority.
	Conditions []string `yaml:"conditions" json:"conditions"`

	// Builtins are extra core module names, added to the Node list.
	Builtins []string `yaml:"builtins" json:"builtins"`

	// PreferModule resolves directories through "module" before "main".
	PreferModule bool `yaml:"preferModule" json:"preferModule"`

	// StrictDescriptors fails on malformed package.json files.
	StrictDescriptors bool `yaml:"strictDescriptors" json:"strictDescriptors"`

	// ProjectRoot marks the resolver's own tree, relative to the config root.
	ProjectRoot string `yaml:"projectRoot" json:"projectRoot"`

	// Overrides pins specifiers to fixed results, keyed by specifier.
	Overrides map[string]Override `yaml:"overrides" json:"overrides"`
}

// Override pins one specifier to a result.
// It can be written as a bare result string or as an object with a base.
type Override struct {
	// Result is returned verbatim: a file URL, a "node:" id, or "" for a miss.
	Result string `yaml:"result" json:"result"`

	// Base restricts the override to lookups from this base.
	// Empty means the config root.
	Base string `yaml:"base" json:"base"`
}

// UnmarshalYAML handles both string and object forms for Override.
func (o *Override) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Result = node.Value
		return nil
	}

	type rawOverride Override
	return node.Decode((*rawOverride)(o))
}

// UnmarshalJSON handles both string and object forms for Override.
func (o *Override) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Result = s
		return nil
	}

	type rawOverride Override
	return json.Unmarshal(data, (*rawOverride)(o))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Validate reports values the resolver cannot use.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalid, ext)
		}
	}
	for _, cond := range c.Conditions {
		if cond == "" {
			return fmt.Errorf("%w: empty condition name", ErrInvalid)
		}
	}
	for spec := range c.Overrides {
		if spec == "" {
			return fmt.Errorf("%w: override for empty specifier", ErrInvalid)
		}
	}
	return nil
}

// Seeds returns the overrides as cache entries, with bases made absolute
// against rootDir.
func (c *Config) Seeds(rootDir string) map[string]string {
	seeds := make(map[string]string, len(c.Overrides))
	for spec, o := range c.Overrides {
		base := rootDir
		if o.Base != "" {
			base = paths.Abs(o.Base, rootDir)
		}
		seeds[cache.Key(spec, base)] = o.Result
	}
	return seeds
}

// Options returns resolve.Options with configuration applied.
// rootDir becomes the working directory and anchors relative paths.
func (c *Config) Options(rootDir string) resolve.Options {
	opts := resolve.Options{
		PreferModule:      c.PreferModule,
		StrictDescriptors: c.StrictDescriptors,
		WorkingDir:        rootDir,
	}

	if len(c.Extensions) > 0 {
		opts.Extensions = c.Extensions
	}
	if len(c.Conditions) > 0 {
		opts.Conditions = c.Conditions
	}
	if len(c.Builtins) > 0 {
		opts.Builtins = builtin.Default().With(c.Builtins...)
	}
	if c.ProjectRoot != "" {
		opts.ProjectRoot = paths.Abs(c.ProjectRoot, rootDir)
	}
	if len(c.Overrides) > 0 {
		opts.Cache = cache.New()
		opts.Cache.Seed(c.Seeds(rootDir))
	}

	return opts
}
