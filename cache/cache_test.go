/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestKey(t *testing.T) {
	if got := Key("filepath", "key"); got != "filepathkey" {
		t.Errorf("Key = %q, want filepathkey", got)
	}
}

func TestGetOrCompute(t *testing.T) {
	c := New()
	calls := 0
	compute := func() (string, error) {
		calls++
		return "file:///a.js", nil
	}

	v, hit, err := c.GetOrCompute("k", compute)
	if err != nil || hit || v != "file:///a.js" {
		t.Fatalf("first call = (%q, %v, %v)", v, hit, err)
	}
	v, hit, err = c.GetOrCompute("k", compute)
	if err != nil || !hit || v != "file:///a.js" {
		t.Fatalf("second call = (%q, %v, %v)", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestGetOrCompute_CachesMisses(t *testing.T) {
	c := New()
	c.GetOrCompute("missing", func() (string, error) { return "", nil })

	v, ok := c.Get("missing")
	if !ok || v != "" {
		t.Errorf("Get = (%q, %v), want cached miss", v, ok)
	}
}

func TestGetOrCompute_ErrorsNotCached(t *testing.T) {
	c := New()
	boom := errors.New("boom")
	_, _, err := c.GetOrCompute("k", func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestSeed(t *testing.T) {
	c := New()
	c.Seed(map[string]string{"filepathkey": "filepathvalue"})

	v, hit, err := c.GetOrCompute("filepathkey", func() (string, error) {
		t.Fatal("compute must not run for a seeded key")
		return "", nil
	})
	if err != nil || !hit || v != "filepathvalue" {
		t.Errorf("GetOrCompute = (%q, %v, %v)", v, hit, err)
	}

	c.Delete("filepathkey")
	if _, ok := c.Get("filepathkey"); ok {
		t.Error("expected key to be deleted")
	}
}

func TestGetOrCompute_Concurrent(t *testing.T) {
	c := New()
	var calls atomic.Int32
	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCompute("shared", func() (string, error) {
				calls.Add(1)
				return "v", nil
			})
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("compute ran %d times, want 1", n)
	}
}
