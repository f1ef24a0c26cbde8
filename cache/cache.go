/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cache memoizes resolution results for the lifetime of a process.
//
// Entries are never evicted and never invalidated by filesystem changes.
// An empty value records a resolution that found nothing.
package cache

import "sync"

// Cache maps a composite key (specifier followed by base) to a result.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Key builds the composite key for a specifier and base.
func Key(specifier, base string) string {
	return specifier + base
}

// Get returns the stored result for key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a result verbatim. Callers may use it to pre-seed overrides.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Seed stores every entry of m.
func (c *Cache) Seed(m map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range m {
		c.entries[k] = v
	}
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrCompute returns the stored result for key, or runs compute and
// stores its result. The lock is held across the check, the computation and
// the insert, so concurrent callers never compute the same key twice.
// Results are not stored when compute fails.
func (c *Cache) GetOrCompute(key string, compute func() (string, error)) (value string, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		return v, true, nil
	}

	v, err := compute()
	if err != nil {
		return "", false, err
	}
	c.entries[key] = v
	return v, false, nil
}
