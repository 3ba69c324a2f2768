package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLRUGetSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := NewLRU(2, time.Minute)

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "a", []byte(`{"tip":"x"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx, "a")
	if err != nil || !ok || string(got) != `{"tip":"x"}` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
	}

	_ = c.Set(ctx, "b", []byte("2"))
	_ = c.Set(ctx, "c", []byte("3"))
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatalf("oldest entry should have been evicted")
	}
}

func TestLRUExpires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := NewLRU(4, 20*time.Millisecond)
	_ = c.Set(ctx, "k", []byte("v"))
	time.Sleep(60 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestLRUReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := NewLRU(4, time.Minute)
	_ = c.Set(ctx, "k", []byte("abc"))
	got, _, _ := c.Get(ctx, "k")
	got[0] = 'z'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("cached bytes mutated: %q", again)
	}
}

func TestKeyIsStableAndSeparatesParts(t *testing.T) {
	t.Parallel()
	a := Key("tutor_tip", "Math", "Limits", "Visual")
	if a != Key("tutor_tip", "Math", "Limits", "Visual") {
		t.Fatalf("key not stable")
	}
	if a == Key("tutor_tip", "MathLimits", "", "Visual") {
		t.Fatalf("parts must not collide when concatenated")
	}
	if !strings.HasPrefix(a, "edubridge:ai:tutor_tip:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
}
