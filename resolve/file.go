/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"strings"

	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/specifier"
)

// resolvePathSpecifier resolves a relative or absolute specifier from dir.
// A trailing slash names a directory, so file resolution is skipped.
func (r *Resolver) resolvePathSpecifier(spec *specifier.Specifier, dir string) (string, error) {
	target := spec.Path
	if spec.Kind == specifier.KindRelative {
		target = paths.Join(dir, spec.Path)
	}
	if strings.HasSuffix(paths.ToPosix(spec.Raw), "/") {
		return r.ResolveDirectory(target)
	}
	return r.ResolvePath(target)
}

// ResolvePath resolves an absolute candidate as a file, then as a
// directory. It returns the resolved path, or "" when neither matches.
func (r *Resolver) ResolvePath(p string) (string, error) {
	found, err := r.ResolveFile(p)
	if err != nil || found != "" {
		return found, err
	}
	return r.ResolveDirectory(p)
}

// ResolveFile returns p if it is a file, else p plus the first configured
// extension that names a file.
func (r *Resolver) ResolveFile(p string) (string, error) {
	return r.probe.File(paths.Clean(p))
}

// ResolveDirectory resolves a directory through its package.json "main"
// (or "module") entry, falling back to its index file.
func (r *Resolver) ResolveDirectory(p string) (string, error) {
	p = paths.Clean(p)
	ok, err := r.probe.IsDir(p)
	if err != nil || !ok {
		return "", err
	}

	desc, err := r.loadDescriptor(p)
	if err != nil {
		return "", err
	}

	if entry := desc.ClassicEntry(r.opts.PreferModule); entry != "" {
		found, err := r.resolveEntry(p, entry)
		if err != nil || found != "" {
			return found, err
		}
	}

	return r.resolveIndex(p)
}

// resolveEntry resolves a "main" value relative to the package directory.
// A main naming a directory resolves to that directory's index.
func (r *Resolver) resolveEntry(dir, entry string) (string, error) {
	target := paths.Join(dir, entry)
	if target == dir {
		return "", nil
	}

	found, err := r.probe.File(target)
	if err != nil || found != "" {
		return found, err
	}

	ok, err := r.probe.IsDir(target)
	if err != nil || !ok {
		return "", err
	}
	return r.resolveIndex(target)
}

func (r *Resolver) resolveIndex(dir string) (string, error) {
	return r.probe.File(paths.Join(dir, "index"))
}
