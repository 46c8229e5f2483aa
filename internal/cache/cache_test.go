package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c, err := New(4, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("unexpected hit")
	}
	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok || v.(int) != 42 {
		t.Fatalf("got (%v,%v), want (42,true)", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c, err := New(4, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry served")
	}
}

func TestEviction(t *testing.T) {
	c, err := New(2, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	if c.Len() > 2 {
		t.Fatalf("cache exceeded capacity: %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
}
