/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exports

import (
	"sort"
	"strings"
)

// Entry is one exported subpath and the target it resolves to under a
// condition list. Pattern entries keep their "*" in both Key and Target.
type Entry struct {
	Key     string
	Target  string
	Pattern bool
}

// List flattens a top-level exports value into its resolvable entries,
// sorted by key. Entries that are null or match no condition are dropped.
func List(v *Value, conditions []string) []Entry {
	entries := v.Entries()
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Entry, 0, len(keys))
	for _, key := range keys {
		target, ok := resolveTarget(entries[key], "", false, conditions)
		if !ok {
			continue
		}
		result = append(result, Entry{
			Key:     key,
			Target:  target,
			Pattern: strings.Contains(key, "*"),
		})
	}
	return result
}
