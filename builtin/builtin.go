/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package builtin holds the set of core module names that are never
// resolved through the filesystem.
package builtin

import (
	"slices"
	"strings"
)

// Prefix is the reserved scheme that marks a core module identifier.
const Prefix = "node:"

// nodeModules mirrors module.builtinModules for Node.js 24, excluding
// private underscore modules.
var nodeModules = []string{
	"assert", "assert/strict", "async_hooks", "buffer", "child_process",
	"cluster", "console", "constants", "crypto", "dgram",
	"diagnostics_channel", "dns", "dns/promises", "domain", "events", "fs",
	"fs/promises", "http", "http2", "https", "inspector",
	"inspector/promises", "module", "net", "os", "path", "path/posix",
	"path/win32", "perf_hooks", "process", "punycode", "querystring",
	"readline", "readline/promises", "repl", "stream", "stream/consumers",
	"stream/promises", "stream/web", "string_decoder", "sys", "timers",
	"timers/promises", "tls", "trace_events", "tty", "url", "util",
	"util/types", "v8", "vm", "wasi", "worker_threads", "zlib",
}

// Registry answers whether a specifier names a core module.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	names map[string]bool
}

// NewRegistry creates a registry holding exactly the given names.
// Names may be given with or without the "node:" prefix.
func NewRegistry(names ...string) *Registry {
	r := &Registry{names: make(map[string]bool, len(names))}
	for _, name := range names {
		r.names[strings.TrimPrefix(name, Prefix)] = true
	}
	return r
}

// Default returns a registry of the Node.js core modules.
func Default() *Registry {
	return NewRegistry(nodeModules...)
}

// With returns a new registry holding r's names plus extra.
func (r *Registry) With(extra ...string) *Registry {
	return NewRegistry(append(r.Names(), extra...)...)
}

// IsBuiltin reports whether spec is a core module: an exact registered
// name, or any specifier already carrying the "node:" prefix.
func (r *Registry) IsBuiltin(spec string) bool {
	if name, ok := strings.CutPrefix(spec, Prefix); ok {
		return name != ""
	}
	return r.names[spec]
}

// Canonical returns the prefixed identifier for a core module,
// or ("", false) when spec is not one.
func (r *Registry) Canonical(spec string) (string, bool) {
	if !r.IsBuiltin(spec) {
		return "", false
	}
	return Prefix + strings.TrimPrefix(spec, Prefix), true
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
