/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction the resolver probes through.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"syscall"
)

// FileSystem is the read-only view of a filesystem used during resolution.
// Paths are absolute and use forward slashes.
// This interface is congruent with bennypowers.dev/mappa/fs.FileSystem
// to enable duck typing compatibility.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns file information for the named file.
	Stat(name string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// IsNotExist reports whether err means the path is absent.
// A path component that is a regular file (ENOTDIR) counts as absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Sub returns an fs.FS rooted at dir, for use with fs.WalkDir and glob
// libraries that require unrooted paths.
func Sub(filesystem FileSystem, dir string) fs.FS {
	return &subFS{fs: filesystem, dir: strings.TrimSuffix(dir, "/")}
}

type subFS struct {
	fs  FileSystem
	dir string
}

func (s *subFS) full(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		if s.dir == "" {
			return "/", nil
		}
		return s.dir, nil
	}
	return s.dir + "/" + name, nil
}

func (s *subFS) Open(name string) (fs.File, error) {
	full, err := s.full(name)
	if err != nil {
		return nil, err
	}
	return s.fs.Open(full)
}

func (s *subFS) ReadDir(name string) ([]fs.DirEntry, error) {
	full, err := s.full(name)
	if err != nil {
		return nil, err
	}
	return s.fs.ReadDir(full)
}

func (s *subFS) Stat(name string) (fs.FileInfo, error) {
	full, err := s.full(name)
	if err != nil {
		return nil, err
	}
	return s.fs.Stat(full)
}
