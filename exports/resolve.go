/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exports

import (
	"slices"
	"strings"
)

// DefaultConditions is the condition priority used when none is configured.
var DefaultConditions = []string{"import", "require", "default"}

// typesCondition points at declaration files and is never a runtime target.
const typesCondition = "types"

// Resolve returns the target path exported under subpath ("." or "./x"),
// or ("", false) when the subpath is not exported.
//
// Exact keys are tried first. Otherwise the wildcard key with the longest
// prefix before its "*" wins, and the text it captured replaces every "*"
// in the chosen target.
func Resolve(v *Value, subpath string, conditions []string) (string, bool) {
	entries := v.Entries()
	if entries == nil {
		return "", false
	}

	if target, ok := entries[subpath]; ok && !strings.Contains(subpath, "*") {
		return resolveTarget(target, "", false, conditions)
	}

	key, capture, ok := Match(entries, subpath)
	if !ok {
		return "", false
	}
	return resolveTarget(entries[key], capture, true, conditions)
}

// Match finds the best wildcard key in entries for subpath and returns it
// together with the text its "*" captured.
func Match(entries map[string]*Value, subpath string) (key, capture string, ok bool) {
	for candidate := range entries {
		c, matched := matchPattern(candidate, subpath)
		if !matched {
			continue
		}
		if !ok || comparePatternKeys(candidate, key) < 0 {
			key, capture, ok = candidate, c, true
		}
	}
	return key, capture, ok
}

// MatchKey resolves subpath against a single exports entry. It succeeds
// when key equals subpath, or key is a pattern that captures part of it.
func MatchKey(key string, value *Value, subpath string, conditions []string) (string, bool) {
	if key == subpath && !strings.Contains(key, "*") {
		return resolveTarget(value, "", false, conditions)
	}
	capture, ok := matchPattern(key, subpath)
	if !ok {
		return "", false
	}
	return resolveTarget(value, capture, true, conditions)
}

// matchPattern tests a key holding exactly one "*". The capture must be
// at least one character long.
func matchPattern(key, subpath string) (string, bool) {
	star := strings.IndexByte(key, '*')
	if star < 0 || strings.LastIndexByte(key, '*') != star {
		return "", false
	}
	prefix, suffix := key[:star], key[star+1:]
	if len(subpath) < len(key) {
		return "", false
	}
	if !strings.HasPrefix(subpath, prefix) || !strings.HasSuffix(subpath, suffix) {
		return "", false
	}
	return subpath[len(prefix) : len(subpath)-len(suffix)], true
}

// comparePatternKeys orders keys by decreasing specificity: a longer
// prefix before "*" first, then the longer key.
func comparePatternKeys(a, b string) int {
	baseA, baseB := patternBase(a), patternBase(b)
	switch {
	case baseA > baseB:
		return -1
	case baseB > baseA:
		return 1
	case len(a) > len(b):
		return -1
	case len(b) > len(a):
		return 1
	}
	return strings.Compare(a, b)
}

func patternBase(key string) int {
	if star := strings.IndexByte(key, '*'); star >= 0 {
		return star + 1
	}
	return len(key)
}

// resolveTarget walks a target value. Arrays yield their first element that
// resolves; condition sets are tried in priority order, falling through to
// the next condition when a nested value fails.
func resolveTarget(v *Value, capture string, pattern bool, conditions []string) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Kind {
	case KindTarget:
		if !validTarget(v.Target) {
			return "", false
		}
		if pattern {
			return strings.ReplaceAll(v.Target, "*", capture), true
		}
		return v.Target, true
	case KindAlternatives:
		for _, alt := range v.Alternatives {
			if target, ok := resolveTarget(alt, capture, pattern, conditions); ok {
				return target, true
			}
		}
	case KindConditions:
		for _, name := range conditions {
			if name == typesCondition {
				continue
			}
			nested, ok := v.Conditions[name]
			if !ok {
				continue
			}
			if target, ok := resolveTarget(nested, capture, pattern, conditions); ok {
				return target, true
			}
		}
	}
	return "", false
}

// validTarget accepts package-relative targets only.
func validTarget(target string) bool {
	if !strings.HasPrefix(target, "./") {
		return false
	}
	return !slices.Contains(strings.Split(target[2:], "/"), "..")
}
