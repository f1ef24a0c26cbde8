/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil loads testdata fixtures into in-memory filesystems.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"bennypowers.dev/resolvewith/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// NewFixtureFS copies testdata/<fixtureDir> into a MapFileSystem mounted at
// rootPath, so "testdata/project/a.js" becomes "/project/a.js" for a
// rootPath of "/project".
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()

	fixturePath := FixturePath(t, fixtureDir)

	err := filepath.WalkDir(fixturePath, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, file)
		if err != nil {
			return err
		}

		mfs.AddFile(path.Join(rootPath, filepath.ToSlash(relPath)), string(content), 0644)

		return nil
	})

	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// FixturePath finds testdata/<fixtureDir> from the package under test,
// whose working directory may sit one or two levels below the module root.
func FixturePath(t *testing.T, fixtureDir string) string {
	t.Helper()

	for _, dir := range testdataDirs(fixtureDir) {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	return ""
}

func testdataDirs(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, file := range testdataDirs(fixturePath) {
		content, err := os.ReadFile(file)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	possiblePaths := testdataDirs(goldenPath)

	var targetPath string
	for _, candidate := range possiblePaths {
		if _, err := os.Stat(filepath.Dir(candidate)); err == nil {
			targetPath = candidate
			break
		}
	}
	if targetPath == "" {
		targetPath = possiblePaths[0]
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}

	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}

	t.Logf("Updated golden file: %s", targetPath)
}
