/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/resolvewith/cache"
	"bennypowers.dev/resolvewith/testutil"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".mjs" || cfg.Extensions[1] != ".js" {
		t.Errorf("expected extensions [.mjs .js], got %v", cfg.Extensions)
	}

	if len(cfg.Conditions) != 2 || cfg.Conditions[0] != "import" {
		t.Errorf("expected conditions [import default], got %v", cfg.Conditions)
	}

	if !cfg.PreferModule {
		t.Error("expected preferModule to be true")
	}

	if cfg.StrictDescriptors {
		t.Error("expected strictDescriptors to default to false")
	}

	if len(cfg.Overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(cfg.Overrides))
	}

	if got := cfg.Overrides["lodash"]; got.Result != "file:///project/vendor/lodash.js" || got.Base != "" {
		t.Errorf("expected string-form override for lodash, got %+v", got)
	}

	if got := cfg.Overrides["fsevents"]; got.Result != "" || got.Base != "./src" {
		t.Errorf("expected object-form override for fsevents, got %+v", got)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if !cfg.StrictDescriptors {
		t.Error("expected strictDescriptors to be true")
	}

	if len(cfg.Conditions) != 2 || cfg.Conditions[0] != "require" {
		t.Errorf("expected conditions [require default], got %v", cfg.Conditions)
	}

	if got := cfg.Overrides["ms"]; got.Result != "file:///project/ms.js" {
		t.Errorf("expected string-form override for ms, got %+v", got)
	}

	if got := cfg.Overrides["debug"]; got.Result != "node:util" || got.Base != "/elsewhere" {
		t.Errorf("expected object-form override for debug, got %+v", got)
	}
}

func TestLoad_Priority(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/priority", "/project")

	if got := Path(mfs, "/project"); got != "/project/.config/resolve.yaml" {
		t.Errorf("expected yaml to win, got %q", got)
	}

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.PreferModule || cfg.StrictDescriptors {
		t.Errorf("expected only the yaml file to be read, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	_, err := Load(mfs, "/project")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != nil {
		t.Error("expected nil config when not found")
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("a = 1"), "resolve.toml")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestConfig_Options(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := cfg.Options("/project")

	if opts.WorkingDir != "/project" {
		t.Errorf("expected working dir /project, got %q", opts.WorkingDir)
	}

	if opts.ProjectRoot != "/project/vendor/resolver" {
		t.Errorf("expected absolute project root, got %q", opts.ProjectRoot)
	}

	if !opts.PreferModule {
		t.Error("expected PreferModule to carry over")
	}

	if opts.Builtins == nil || !opts.Builtins.IsBuiltin("electron") || !opts.Builtins.IsBuiltin("fs") {
		t.Error("expected builtins to extend the default registry")
	}

	if opts.Cache == nil {
		t.Fatal("expected a seeded cache")
	}

	if v, ok := opts.Cache.Get(cache.Key("lodash", "/project")); !ok || v != "file:///project/vendor/lodash.js" {
		t.Errorf("expected lodash seed keyed by the root, got (%q, %v)", v, ok)
	}

	if v, ok := opts.Cache.Get(cache.Key("fsevents", "/project/src")); !ok || v != "" {
		t.Errorf("expected fsevents miss keyed by /project/src, got (%q, %v)", v, ok)
	}
}

func TestConfig_Options_Defaults(t *testing.T) {
	opts := Default().Options("/project")

	if opts.Extensions != nil || opts.Conditions != nil || opts.Builtins != nil || opts.Cache != nil {
		t.Errorf("expected resolver defaults to stay unset, got %+v", opts)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"dotted extensions", Config{Extensions: []string{".js", ".ts"}}, false},
		{"missing dot", Config{Extensions: []string{"js"}}, true},
		{"bare dot", Config{Extensions: []string{"."}}, true},
		{"empty condition", Config{Conditions: []string{"import", ""}}, true},
		{"empty override key", Config{Overrides: map[string]Override{"": {}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverride_UnmarshalYAML_String(t *testing.T) {
	var o Override
	if err := yaml.Unmarshal([]byte(`"node:path"`), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Result != "node:path" || o.Base != "" {
		t.Errorf("expected result only, got %+v", o)
	}
}

func TestOverride_UnmarshalJSON_Object(t *testing.T) {
	var o Override
	if err := o.UnmarshalJSON([]byte(`{"result": "file:///a.js", "base": "/b"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Result != "file:///a.js" || o.Base != "/b" {
		t.Errorf("expected result and base, got %+v", o)
	}
}
