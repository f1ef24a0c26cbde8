/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package builtin

import "testing"

func TestCanonical(t *testing.T) {
	r := Default()

	tests := []struct {
		spec   string
		want   string
		wantOK bool
	}{
		{"path", "node:path", true},
		{"node:path", "node:path", true},
		{"fs/promises", "node:fs/promises", true},
		{"node:test", "node:test", true},
		{"test", "", false},
		{"lodash", "", false},
		{"./path", "", false},
		{"node:", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := r.Canonical(tt.spec)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Canonical(%q) = (%q, %v), want (%q, %v)", tt.spec, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	r := Default()
	for _, name := range r.Names() {
		once, ok := r.Canonical(name)
		if !ok {
			t.Fatalf("Canonical(%q) not ok", name)
		}
		twice, ok := r.Canonical(once)
		if !ok || twice != once {
			t.Errorf("Canonical(%q) = %q, want %q", once, twice, once)
		}
	}
}

func TestWith(t *testing.T) {
	r := NewRegistry("fs").With("node:electron")

	if !r.IsBuiltin("electron") {
		t.Error("expected electron to be registered")
	}
	if !r.IsBuiltin("fs") {
		t.Error("expected fs to be kept")
	}
	if r.IsBuiltin("path") {
		t.Error("expected path to be absent from a custom registry")
	}
}
