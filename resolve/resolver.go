/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve turns a module specifier and a base location into a
// file URL, a core module identifier, or nothing.
//
// It combines classic resolution (extension probing, "main", index files and
// the node_modules walk) with conditional "exports" resolution, and memoizes
// every answer in a cache keyed by the raw specifier and base.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"bennypowers.dev/resolvewith/builtin"
	"bennypowers.dev/resolvewith/cache"
	"bennypowers.dev/resolvewith/exports"
	rwfs "bennypowers.dev/resolvewith/fs"
	"bennypowers.dev/resolvewith/internal/logger"
	"bennypowers.dev/resolvewith/packagejson"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/probe"
	"bennypowers.dev/resolvewith/specifier"
)

// Resolver resolves specifiers against one filesystem.
type Resolver struct {
	fs         rwfs.FileSystem
	opts       Options
	probe      *probe.Prober
	loader     *packagejson.Loader
	cache      *cache.Cache
	builtins   *builtin.Registry
	conditions []string
	workingDir string
}

// New creates a resolver. WorkingDir defaults to the process working
// directory and must be absolute when given.
func New(fs rwfs.FileSystem, opts Options) (*Resolver, error) {
	workingDir := opts.WorkingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workingDir = wd
	}
	if !paths.IsAbs(workingDir) {
		return nil, fmt.Errorf("working directory must be an absolute path, got: %s", workingDir)
	}

	r := &Resolver{
		fs:         fs,
		opts:       opts,
		probe:      probe.New(fs, opts.Extensions),
		cache:      opts.Cache,
		builtins:   opts.Builtins,
		conditions: opts.Conditions,
		workingDir: paths.Clean(workingDir),
	}
	r.loader = packagejson.NewLoader(fs, r.probe)
	if r.cache == nil {
		r.cache = cache.New()
	}
	if r.builtins == nil {
		r.builtins = builtin.Default()
	}
	if r.conditions == nil {
		r.conditions = exports.DefaultConditions
	}
	if opts.ProjectRoot != "" {
		r.opts.ProjectRoot = paths.Abs(opts.ProjectRoot, r.workingDir)
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
	defaultErr      error
)

// Default returns the process-wide resolver over the OS filesystem.
func Default() (*Resolver, error) {
	defaultOnce.Do(func() {
		defaultResolver, defaultErr = New(rwfs.NewOSFileSystem(), Options{})
	})
	return defaultResolver, defaultErr
}

// Cache returns the resolver's cache, for inspection or pre-seeding.
func (r *Resolver) Cache() *cache.Cache {
	return r.cache
}

// WorkingDir returns the base used when none is given.
func (r *Resolver) WorkingDir() string {
	return r.workingDir
}

// Resolve resolves spec relative to base, which may be a directory, a file,
// or a file URL; empty means the working directory.
//
// The result is a file URL, a "node:" identifier, or "" when nothing
// matches. Errors are reserved for invalid input and for filesystem
// failures other than a missing path.
func (r *Resolver) Resolve(spec, base string) (string, error) {
	if spec == "" {
		return "", fmt.Errorf("%w: empty specifier", ErrInvalidSpecifier)
	}
	if base == "" {
		base = r.workingDir
	}

	result, hit, err := r.cache.GetOrCompute(cache.Key(spec, base), func() (string, error) {
		return r.resolve(spec, base)
	})
	if err != nil {
		return "", err
	}
	if hit {
		logger.Debug("cache hit: %q from %q -> %q", spec, base, result)
	}
	return result, nil
}

func (r *Resolver) resolve(spec, base string) (string, error) {
	parsed, err := specifier.Parse(spec, r.builtins)
	if err != nil {
		return "", err
	}
	if parsed.Kind == specifier.KindBuiltin {
		return parsed.Builtin, nil
	}

	dir, err := r.BaseDir(base)
	if err != nil {
		return "", err
	}

	var found string
	if parsed.IsPath() {
		found, err = r.resolvePathSpecifier(parsed, dir)
	} else {
		found, err = r.resolvePackage(parsed, dir)
	}
	if err != nil {
		return "", err
	}

	if found == "" {
		logger.Debug("not found: %q from %q", spec, dir)
		return "", nil
	}
	logger.Debug("resolved: %q from %q -> %s", spec, dir, found)
	return paths.FileURL(found), nil
}

// BaseDir returns the directory a base location anchors lookups in.
// File URLs are converted to paths; a base naming a file, or a missing path
// with an extension, stands for its directory; a trailing slash always means
// a directory.
func (r *Resolver) BaseDir(base string) (string, error) {
	if base == "" {
		return r.workingDir, nil
	}

	p := base
	if paths.IsFileURL(base) {
		converted, err := paths.FromFileURL(base)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidBase, err)
		}
		p = converted
	}

	trailingSlash := strings.HasSuffix(paths.ToPosix(p), "/")
	p = paths.Abs(p, r.workingDir)
	if trailingSlash {
		return p, nil
	}

	isDir, err := r.probe.IsDir(p)
	if err != nil {
		return "", err
	}
	if isDir {
		return p, nil
	}

	isFile, err := r.probe.IsFile(p)
	if err != nil {
		return "", err
	}
	if isFile || path.Ext(p) != "" {
		return paths.Dir(p), nil
	}
	return p, nil
}

// loadDescriptor reads dir/package.json. Unless StrictDescriptors is set,
// a malformed file is reported and treated as absent.
func (r *Resolver) loadDescriptor(dir string) (*packagejson.Descriptor, error) {
	desc, err := r.loader.Load(dir)
	if err != nil && errors.Is(err, packagejson.ErrMalformed) && !r.opts.StrictDescriptors {
		logger.Warn("ignoring %v", err)
		return nil, nil
	}
	return desc, err
}
