package cache

import (
	"testing"
	"time"
)

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := NewTTLCache[int](5*time.Minute, clock)
	c.Set("user:1:recs", 7)

	if v, ok := c.Get("user:1:recs"); !ok || v != 7 {
		t.Fatalf("fresh entry: got (%d,%v), want (7,true)", v, ok)
	}

	now = now.Add(4 * time.Minute)
	if _, ok := c.Get("user:1:recs"); !ok {
		t.Fatalf("entry expired early at 4m")
	}

	now = now.Add(time.Minute)
	if _, ok := c.Get("user:1:recs"); ok {
		t.Fatalf("entry survived past the 5m TTL")
	}
}

func TestTTLCacheInvalidate(t *testing.T) {
	c := NewTTLCache[string](time.Hour, nil)
	c.Set("k", "v")
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("invalidated entry still present")
	}
}

func TestTTLCacheMissingKey(t *testing.T) {
	c := NewTTLCache[int](time.Minute, nil)
	if v, ok := c.Get("absent"); ok || v != 0 {
		t.Fatalf("got (%d,%v) for absent key", v, ok)
	}
}
