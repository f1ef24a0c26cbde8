/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"
	"fmt"

	"bennypowers.dev/resolvewith/exports"
	"bennypowers.dev/resolvewith/internal/logger"
	"bennypowers.dev/resolvewith/packagejson"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/specifier"
)

// NodeModulesPaths lists the dependency directories searched from dir,
// nearest first.
func (r *Resolver) NodeModulesPaths(dir string) []string {
	return paths.NodeModulesPaths(dir, r.opts.ProjectRoot)
}

// resolvePackage resolves a bare specifier from dir. The first package
// directory found ends the search, whether or not the subpath inside it
// resolves.
func (r *Resolver) resolvePackage(spec *specifier.Specifier, dir string) (string, error) {
	if !r.opts.DisableSelfReference {
		found, handled, err := r.resolveSelf(spec, dir)
		if err != nil || handled {
			return found, err
		}
	}

	pkgDir, err := r.findPackage(spec.Package, dir)
	if err != nil || pkgDir == "" {
		return "", err
	}
	return r.ResolvePackageDir(pkgDir, spec.Subpath)
}

// PackageDir returns the directory a bare import of name from base would
// load, or "" when no node_modules candidate holds it.
func (r *Resolver) PackageDir(name, base string) (string, error) {
	spec, err := specifier.Parse(name, r.builtins)
	if err != nil {
		return "", err
	}
	if !spec.IsPackage() {
		return "", fmt.Errorf("%w: %q is not a package name", ErrInvalidSpecifier, name)
	}
	dir, err := r.BaseDir(base)
	if err != nil {
		return "", err
	}
	return r.findPackage(spec.Package, dir)
}

func (r *Resolver) findPackage(name, dir string) (string, error) {
	for _, nm := range r.NodeModulesPaths(dir) {
		pkgDir := paths.Join(nm, name)
		ok, err := r.probe.IsDir(pkgDir)
		if err != nil {
			return "", err
		}
		if ok {
			logger.Debug("package %s found at %s", name, pkgDir)
			return pkgDir, nil
		}
	}
	return "", nil
}

// Descriptor loads dir/package.json the way resolution does, so a malformed
// file is nil unless StrictDescriptors is set.
func (r *Resolver) Descriptor(dir string) (*packagejson.Descriptor, error) {
	return r.loadDescriptor(paths.Clean(dir))
}

// Conditions returns the exports condition priority in effect.
func (r *Resolver) Conditions() []string {
	return r.conditions
}

// resolveSelf lets code inside a package import it by its own name. It only
// applies when the nearest package.json has a matching name and "exports".
func (r *Resolver) resolveSelf(spec *specifier.Specifier, dir string) (string, bool, error) {
	desc, pkgDir, err := r.loader.FindNearest(dir)
	if err != nil {
		if !r.opts.StrictDescriptors && errors.Is(err, packagejson.ErrMalformed) {
			logger.Warn("ignoring %v", err)
			return "", false, nil
		}
		return "", false, err
	}
	if desc == nil || desc.Name != spec.Package || !desc.HasExports() {
		return "", false, nil
	}
	found, err := r.resolveExports(pkgDir, desc.Exports, spec.Subpath)
	return found, true, err
}

// ResolvePackageDir resolves subpath ("." or "./x") inside an installed
// package. With "exports" only exported subpaths resolve; without it the
// root goes through directory resolution and other subpaths through file
// resolution.
func (r *Resolver) ResolvePackageDir(pkgDir, subpath string) (string, error) {
	desc, err := r.loadDescriptor(pkgDir)
	if err != nil {
		return "", err
	}

	if desc.HasExports() {
		return r.resolveExports(pkgDir, desc.Exports, subpath)
	}

	if subpath == "." {
		return r.ResolveDirectory(pkgDir)
	}
	full := paths.Join(pkgDir, subpath)
	if !paths.Within(full, pkgDir) {
		logger.Warn("%s: subpath %q escapes the package", pkgDir, subpath)
		return "", nil
	}
	return r.ResolveFile(full)
}

func (r *Resolver) resolveExports(pkgDir string, exp *exports.Value, subpath string) (string, error) {
	target, ok := exports.Resolve(exp, subpath, r.conditions)
	if !ok {
		logger.Debug("%s: subpath %q is not exported", pkgDir, subpath)
		return "", nil
	}

	full := paths.Join(pkgDir, target)
	if !paths.Within(full, pkgDir) {
		logger.Warn("%s: export target %q escapes the package", pkgDir, target)
		return "", nil
	}
	return r.probe.File(full)
}
