/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package packagejson

import (
	"fmt"

	rwfs "bennypowers.dev/resolvewith/fs"
	"bennypowers.dev/resolvewith/paths"
	"bennypowers.dev/resolvewith/probe"
)

// Loader reads descriptors from a filesystem.
type Loader struct {
	fs    rwfs.FileSystem
	probe *probe.Prober
}

// NewLoader creates a loader that checks for descriptor files with prober.
func NewLoader(fs rwfs.FileSystem, prober *probe.Prober) *Loader {
	return &Loader{fs: fs, probe: prober}
}

// Load reads dir/package.json. It returns (nil, nil) when the directory has
// no descriptor, and an error wrapping ErrMalformed when it cannot be decoded.
func (l *Loader) Load(dir string) (*Descriptor, error) {
	file := paths.Join(dir, FileName)

	ok, err := l.probe.IsFile(file)
	if err != nil || !ok {
		return nil, err
	}

	data, err := l.fs.ReadFile(file)
	if err != nil {
		if rwfs.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	desc.Path = file
	return desc, nil
}

// FindNearest walks from dir up to the root and returns the first descriptor
// found, with the directory that holds it.
func (l *Loader) FindNearest(dir string) (*Descriptor, string, error) {
	dir = paths.Clean(dir)
	for {
		desc, err := l.Load(dir)
		if err != nil {
			return nil, "", err
		}
		if desc != nil {
			return desc, dir, nil
		}

		parent := paths.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}
