/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"bennypowers.dev/resolvewith/builtin"
	"bennypowers.dev/resolvewith/cache"
)

// Options configures a Resolver. The zero value is usable.
type Options struct {
	// Extensions are appended, in order, to extensionless candidates.
	// Nil selects probe.DefaultExtensions.
	Extensions []string

	// Conditions is the exports condition priority.
	// Nil selects exports.DefaultConditions. "types" is always skipped.
	Conditions []string

	// Builtins is the set of core modules. Nil selects builtin.Default().
	Builtins *builtin.Registry

	// PreferModule makes directory resolution try "module" before "main".
	PreferModule bool

	// StrictDescriptors turns malformed package.json files into errors
	// instead of treating them as absent.
	StrictDescriptors bool

	// DisableSelfReference stops a package from importing itself by name
	// through its own "exports".
	DisableSelfReference bool

	// ProjectRoot is the resolver's own project tree. Starting points inside
	// it keep node_modules/node_modules candidates.
	ProjectRoot string

	// WorkingDir is the base used when a call passes none.
	// Empty selects the process working directory.
	WorkingDir string

	// Cache memoizes results. Nil creates a private cache.
	Cache *cache.Cache
}
