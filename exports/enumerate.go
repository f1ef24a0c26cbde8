/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exports

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Enumerate lists every subpath v exposes, with pattern entries expanded
// against the files in pkg, the package directory. Each expansion is kept
// only if resolving its subpath through v lands on the same file, so more
// specific keys shadow broader ones the way they do at import time.
func Enumerate(pkg fs.FS, v *Value, conditions []string) ([]Entry, error) {
	var result []Entry
	for _, entry := range List(v, conditions) {
		if !entry.Pattern {
			result = append(result, entry)
			continue
		}
		expanded, err := expand(pkg, entry)
		if err != nil {
			return nil, err
		}
		for _, e := range expanded {
			if target, ok := Resolve(v, e.Key, conditions); ok && target == e.Target {
				result = append(result, e)
			}
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result, nil
}

// expand globs the files a pattern entry's target can reach.
func expand(pkg fs.FS, entry Entry) ([]Entry, error) {
	star := strings.IndexByte(entry.Target, '*')
	if star < 0 {
		return nil, nil
	}
	prefix := strings.TrimPrefix(entry.Target[:star], "./")
	suffix := entry.Target[star+1:]

	// A capture may span directories only when "*" starts a path segment.
	glob := escapeMeta(prefix) + "*" + escapeMeta(suffix)
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		glob = escapeMeta(prefix) + "**/*" + escapeMeta(suffix)
	}

	matches, err := doublestar.Glob(pkg, glob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	var result []Entry
	for _, m := range matches {
		if len(m) <= len(prefix)+len(suffix) {
			continue
		}
		capture := m[len(prefix) : len(m)-len(suffix)]
		target := strings.ReplaceAll(entry.Target, "*", capture)
		if target != "./"+m {
			continue
		}
		result = append(result, Entry{
			Key:    strings.ReplaceAll(entry.Key, "*", capture),
			Target: target,
		})
	}
	return result, nil
}

func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
