/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package packagejson

import (
	"errors"
	"io/fs"
	"testing"

	"bennypowers.dev/resolvewith/exports"
	"bennypowers.dev/resolvewith/internal/mapfs"
	"bennypowers.dev/resolvewith/probe"
)

func TestRootEntry(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		preferModule bool
		want         string
	}{
		{
			name: "exports.import",
			data: `{"name": "test", "exports": {"types": "./index.d.ts", "require": "./index.js", "import": "./index.mjs"}}`,
			want: "./index.mjs",
		},
		{
			name: `exports["."].import`,
			data: `{"name": "test", "exports": {".": {"require": "./index.js", "import": "./index.mjs"}}}`,
			want: "./index.mjs",
		},
		{
			name: "stringy exports",
			data: `{"name": "test", "exports": "./index.mjs"}`,
			want: "./index.mjs",
		},
		{
			name: "mixed exports",
			data: `{"name": "test", "exports": {
				"./package.json": "./package.json",
				".": [{"import": "./index.mjs", "require": "./index.cjs"}, "./index.cjs"],
				"./helpers": {"import": "./helpers/helpers.mjs", "require": "./helpers/index.js"}
			}}`,
			want: "./index.mjs",
		},
		{
			name: "exports wins over main",
			data: `{"main": "./main.js", "exports": "./exported.js"}`,
			want: "./exported.js",
		},
		{
			name: "main",
			data: `{"main": "./lib", "module": "./esm/index.js"}`,
			want: "./lib",
		},
		{
			name:         "module preferred",
			data:         `{"main": "./lib", "module": "./esm/index.js"}`,
			preferModule: true,
			want:         "./esm/index.js",
		},
		{
			name: "module as fallback",
			data: `{"module": "./esm/index.js"}`,
			want: "./esm/index.js",
		},
		{
			name: "null exports is absent",
			data: `{"main": "./main.js", "exports": null}`,
			want: "./main.js",
		},
		{
			name: "comments tolerated",
			data: "{\n  // entry\n  \"main\": \"./main.js\",\n}",
			want: "./main.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := desc.ClassicEntry(tt.preferModule)
			if desc.HasExports() {
				got, _ = exports.Resolve(desc.Exports, ".", exports.DefaultConditions)
			}
			if got != tt.want {
				t.Errorf("root entry = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, data := range []string{`{"name": `, `{"main": 42}`, `[]`} {
		_, err := Parse([]byte(data))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", data, err)
		}
	}
}

func TestLoader(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/package.json", `{"name": "root-pkg", "type": "module"}`, 0644)
	mfs.AddFile("/project/packages/a/package.json", `{"name": "a", "main": "./index.js"}`, 0644)
	mfs.AddFile("/project/packages/a/src/deep/file.js", "", 0644)
	mfs.AddFile("/project/broken/package.json", `{"name":`, 0644)
	mfs.AddDir("/project/packages/b", 0755)
	loader := NewLoader(mfs, probe.New(mfs, nil))

	t.Run("load present", func(t *testing.T) {
		desc, err := loader.Load("/project/packages/a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc == nil || desc.Name != "a" {
			t.Fatalf("desc = %+v, want name a", desc)
		}
		if desc.Path != "/project/packages/a/package.json" {
			t.Errorf("Path = %q", desc.Path)
		}
	})

	t.Run("load absent", func(t *testing.T) {
		desc, err := loader.Load("/project/packages/b")
		if err != nil || desc != nil {
			t.Errorf("Load = (%v, %v), want (nil, nil)", desc, err)
		}
	})

	t.Run("load malformed", func(t *testing.T) {
		_, err := loader.Load("/project/broken")
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("error = %v, want ErrMalformed", err)
		}
	})

	t.Run("nearest from deep directory", func(t *testing.T) {
		desc, dir, err := loader.FindNearest("/project/packages/a/src/deep")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.Name != "a" || dir != "/project/packages/a" {
			t.Errorf("FindNearest = (%q, %q), want (a, /project/packages/a)", desc.Name, dir)
		}
	})

	t.Run("nearest skips directories without descriptor", func(t *testing.T) {
		desc, dir, err := loader.FindNearest("/project/packages/b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.Type != "module" || dir != "/project" {
			t.Errorf("FindNearest = (%+v, %q), want root-pkg at /project", desc, dir)
		}
	})

	t.Run("nearest none", func(t *testing.T) {
		empty := mapfs.New()
		empty.AddDir("/x/y", 0755)
		desc, dir, err := NewLoader(empty, probe.New(empty, nil)).FindNearest("/x/y")
		if err != nil || desc != nil || dir != "" {
			t.Errorf("FindNearest = (%v, %q, %v), want nothing", desc, dir, err)
		}
	})

	t.Run("permission denied surfaces", func(t *testing.T) {
		mfs.Fail("/project/packages/a/package.json", fs.ErrPermission)
		_, err := loader.Load("/project/packages/a")
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("error = %v, want fs.ErrPermission", err)
		}
	})
}
