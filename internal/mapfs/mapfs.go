/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem using an in-memory fstest.MapFS.
// This is useful for testing without touching the real filesystem.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	faults  map[string]error
	modTime time.Time
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		faults:  make(map[string]error),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds an empty directory to the in-memory filesystem.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(p)] = &fstest.MapFile{
		Mode:    fs.ModeDir | mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// Fail makes every operation on p return err, e.g. fs.ErrPermission.
func (mfs *MapFileSystem) Fail(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.faults[mfs.cleanPath(p)] = err
}

// ReadFile implements fs.FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("read", name); err != nil {
		return nil, err
	}
	return fs.ReadFile(mfs.mapFS, name)
}

// Stat implements fs.FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("stat", name); err != nil {
		return nil, err
	}
	return fs.Stat(mfs.mapFS, name)
}

// Exists implements fs.FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	_, err := mfs.Stat(p)
	return err == nil
}

// ReadDir implements fs.FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("readdir", name); err != nil {
		return nil, err
	}
	return fs.ReadDir(mfs.mapFS, name)
}

// Open implements fs.FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("open", name); err != nil {
		return nil, err
	}
	return mfs.mapFS.Open(name)
}

// ListFiles returns all entries in the MapFS for debugging.
func (mfs *MapFileSystem) ListFiles() map[string]string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	result := make(map[string]string)
	for p, file := range mfs.mapFS {
		if file.Mode.IsDir() {
			result["/"+p] = "directory"
		} else {
			result["/"+p] = fmt.Sprintf("file (%d bytes)", len(file.Data))
		}
	}
	return result
}

func (mfs *MapFileSystem) fault(op, name string) error {
	if err, ok := mfs.faults[name]; ok {
		return &fs.PathError{Op: op, Path: "/" + name, Err: err}
	}
	return nil
}

// cleanPath maps an absolute slash path onto an fstest.MapFS key.
// The root maps to ".".
func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean("/" + p)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
