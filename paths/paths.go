/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package paths converts between platform paths, canonical forward-slash
// paths and file URLs. Every path leaving this package uses "/" separators,
// with an optional drive-letter volume such as "D:".
package paths

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrNotFileURL indicates a string is not a usable file: URL.
var ErrNotFileURL = errors.New("not a file URL")

const fileScheme = "file:"

// ToPosix replaces every backslash with a forward slash.
// Drive letters are preserved, and the transform is idempotent.
func ToPosix(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// SplitVolume splits a drive-letter volume ("D:") off a posix path.
// Paths without a volume return an empty volume.
func SplitVolume(p string) (volume, rest string) {
	if len(p) >= 2 && p[1] == ':' && isLetter(p[0]) {
		return p[:2], p[2:]
	}
	return "", p
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsAbs reports whether p is absolute, with or without a drive volume.
func IsAbs(p string) bool {
	_, rest := SplitVolume(ToPosix(p))
	return strings.HasPrefix(rest, "/")
}

// Clean returns the shortest equivalent of p, keeping its volume intact.
func Clean(p string) string {
	vol, rest := SplitVolume(ToPosix(p))
	if vol != "" && rest == "" {
		rest = "/"
	}
	return vol + path.Clean(rest)
}

// Join joins elements onto base without letting ".." climb past the volume.
func Join(base string, elem ...string) string {
	vol, rest := SplitVolume(ToPosix(base))
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, rest)
	for _, e := range elem {
		parts = append(parts, ToPosix(e))
	}
	return vol + path.Join(parts...)
}

// Dir returns all but the last element of p.
func Dir(p string) string {
	vol, rest := SplitVolume(ToPosix(p))
	return vol + path.Dir(rest)
}

// Abs makes p absolute against cwd when it is relative.
func Abs(p, cwd string) string {
	if IsAbs(p) {
		return Clean(p)
	}
	return Join(cwd, p)
}

// Within reports whether p equals root or lies beneath it.
// Both paths must already be clean.
func Within(p, root string) bool {
	if p == root {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(root, "/")+"/")
}

// IsFileURL reports whether s uses the file: scheme.
func IsFileURL(s string) bool {
	return len(s) >= len(fileScheme) && strings.EqualFold(s[:len(fileScheme)], fileScheme)
}

// FileURL formats an absolute path as a file URL, percent-encoding
// characters such as spaces. "D:/a/b.js" becomes "file:///D:/a/b.js".
func FileURL(p string) string {
	p = ToPosix(p)
	if vol, _ := SplitVolume(p); vol != "" {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// FromFileURL converts a file URL back to a canonical absolute path.
func FromFileURL(s string) (string, error) {
	if !IsFileURL(s) {
		return "", fmt.Errorf("%w: %s", ErrNotFileURL, s)
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFileURL, s, err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%w: remote host %q in %s", ErrNotFileURL, u.Host, s)
	}
	p := u.Path
	if p == "" {
		return "", fmt.Errorf("%w: empty path in %s", ErrNotFileURL, s)
	}
	// "/D:/a" carries a volume behind the leading slash.
	if vol, _ := SplitVolume(strings.TrimPrefix(p, "/")); vol != "" {
		p = strings.TrimPrefix(p, "/")
	}
	return Clean(p), nil
}
