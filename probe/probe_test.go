/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package probe

import (
	"errors"
	"io/fs"
	"testing"

	"bennypowers.dev/resolvewith/internal/mapfs"
)

func newFS() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/optfn/optfn.js", "module.exports = {}", 0644)
	mfs.AddFile("/project/lib/only.cjs", "", 0644)
	mfs.AddFile("/project/lib/data.json", "{}", 0644)
	mfs.AddFile("/project/lib/both.js", "", 0644)
	mfs.AddFile("/project/lib/both.mjs", "", 0644)
	mfs.AddFile("/project/lib/noext", "", 0644)
	mfs.AddDir("/project/lib/dir.js", 0755)
	return mfs
}

func TestFile(t *testing.T) {
	p := New(newFS(), nil)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"appends extension", "/project/node_modules/optfn/optfn", "/project/node_modules/optfn/optfn.js"},
		{"exact file", "/project/node_modules/optfn/optfn.js", "/project/node_modules/optfn/optfn.js"},
		{"extensionless file wins", "/project/lib/noext", "/project/lib/noext"},
		{"cjs", "/project/lib/only", "/project/lib/only.cjs"},
		{"json", "/project/lib/data", "/project/lib/data.json"},
		{"js before mjs", "/project/lib/both", "/project/lib/both.js"},
		{"directory is not a file", "/project/lib/dir", ""},
		{"missing", "/project/lib/missing", ""},
		{"below a file", "/project/lib/noext/child", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.File(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("File(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFile_CustomExtensions(t *testing.T) {
	p := New(newFS(), []string{".mjs"})

	got, err := p.File("/project/lib/both")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/project/lib/both.mjs" {
		t.Errorf("File = %q, want both.mjs", got)
	}
}

func TestIsDir(t *testing.T) {
	p := New(newFS(), nil)

	for path, want := range map[string]bool{
		"/project":                    true,
		"/project/lib/dir.js":         true,
		"/project/lib/both.js":        false,
		"/project/missing":            false,
		"/project/node_modules/optfn": true,
	} {
		got, err := p.IsDir(path)
		if err != nil {
			t.Fatalf("IsDir(%q): %v", path, err)
		}
		if got != want {
			t.Errorf("IsDir(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFile_SurfacesPermissionErrors(t *testing.T) {
	mfs := newFS()
	mfs.Fail("/project/secret.js", fs.ErrPermission)
	p := New(mfs, nil)

	_, err := p.File("/project/secret")
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("File error = %v, want fs.ErrPermission", err)
	}
}
