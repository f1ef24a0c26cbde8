/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package probe checks candidate paths against the filesystem.
//
// Only "does not exist" is treated as a miss. Any other error, such as
// permission denied, is returned to the caller.
package probe

import (
	"fmt"

	rwfs "bennypowers.dev/resolvewith/fs"
)

// DefaultExtensions is the order in which extensions are appended to an
// extensionless candidate.
var DefaultExtensions = []string{".js", ".mjs", ".cjs", ".json"}

// Prober probes files and directories with a fixed extension list.
type Prober struct {
	fs         rwfs.FileSystem
	extensions []string
}

// New creates a prober. A nil extensions slice selects DefaultExtensions.
func New(fs rwfs.FileSystem, extensions []string) *Prober {
	if extensions == nil {
		extensions = DefaultExtensions
	}
	return &Prober{fs: fs, extensions: extensions}
}

// IsFile reports whether path names an existing non-directory.
func (p *Prober) IsFile(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if rwfs.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("probing %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

// IsDir reports whether path names an existing directory.
func (p *Prober) IsDir(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if rwfs.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("probing %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// File returns path if it is a file, otherwise the first path+ext that is.
// It returns "" when nothing matches.
func (p *Prober) File(path string) (string, error) {
	ok, err := p.IsFile(path)
	if err != nil || ok {
		return okPath(path, ok), err
	}
	for _, ext := range p.extensions {
		candidate := path + ext
		ok, err := p.IsFile(candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
	return "", nil
}

func okPath(path string, ok bool) string {
	if ok {
		return path
	}
	return ""
}
