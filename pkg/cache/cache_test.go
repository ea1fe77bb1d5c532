package cache

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || data != nil {
		t.Error("null cache returned a hit")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("delete: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer c.Close()

	want := []byte(`{"placed":[]}`)
	if err := c.Set(ctx, "layout:abc", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	data, found, err := c.Get(ctx, "layout:abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("stored entry not found")
	}
	if !bytes.Equal(data, want) {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, found, err := c.Get(context.Background(), "layout:never-set")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Error("unexpected hit for unknown key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "layout:short", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, found, err := c.Get(ctx, "layout:short")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Error("expired entry still returned")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "layout:forever", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found, _ := c.Get(ctx, "layout:forever"); !found {
		t.Error("zero-TTL entry expired")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "layout:gone", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "layout:gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := c.Get(ctx, "layout:gone"); found {
		t.Error("deleted entry still present")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "layout:never-set"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := fc.(*FileCache)

	for _, k := range []string{"layout:a", "layout:b"} {
		if err := c.Set(ctx, k, []byte("v"), time.Minute); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found, _ := c.Get(ctx, "layout:a"); found {
		t.Error("entry survived Clear")
	}

	// The directory must remain usable after Clear.
	if err := c.Set(ctx, "layout:c", []byte("v"), time.Minute); err != nil {
		t.Errorf("set after clear: %v", err)
	}
}

func TestHashDeterministic(t *testing.T) {
	a := Hash([]byte("wortwolke"))
	b := Hash([]byte("wortwolke"))
	if a != b {
		t.Error("same input hashed differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == Hash([]byte("other")) {
		t.Error("different inputs collided")
	}
}

func TestLayoutKeySensitivity(t *testing.T) {
	keyer := NewDefaultKeyer()
	items := []cloud.Item{{ID: "a", Text: "Museen", Value: 10}}
	container := cloud.Container{Width: 800, Height: 500}
	cfg := cloud.DefaultConfig()

	base := keyer.LayoutKey(items, container, cfg, "spiral")
	if !strings.HasPrefix(base, "layout:") {
		t.Errorf("key %q missing layout namespace", base)
	}
	if base != keyer.LayoutKey(items, container, cfg, "spiral") {
		t.Error("identical inputs produced different keys")
	}

	changedItems := []cloud.Item{{ID: "a", Text: "Museen", Value: 11}}
	if base == keyer.LayoutKey(changedItems, container, cfg, "spiral") {
		t.Error("changed item value did not change the key")
	}
	if base == keyer.LayoutKey(items, cloud.Container{Width: 900, Height: 500}, cfg, "spiral") {
		t.Error("changed container did not change the key")
	}
	if base == keyer.LayoutKey(items, container, cfg, "force") {
		t.Error("changed strategy did not change the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	items := []cloud.Item{{ID: "a", Value: 1}}
	container := cloud.Container{Width: 800, Height: 500}
	cfg := cloud.DefaultConfig()

	scoped := NewScopedKeyer(NewDefaultKeyer(), "tenant42:")
	key := scoped.LayoutKey(items, container, cfg, "auto")
	if !strings.HasPrefix(key, "tenant42:layout:") {
		t.Errorf("scoped key = %q, want tenant42:layout: prefix", key)
	}

	// Nil inner falls back to the default keyer.
	fallback := NewScopedKeyer(nil, "t:")
	if !strings.HasPrefix(fallback.LayoutKey(items, container, cfg, "auto"), "t:layout:") {
		t.Error("nil inner keyer not defaulted")
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return stderrors.New("permanent")
	})
	if err == nil {
		t.Fatal("permanent error swallowed")
	}
	if calls != 1 {
		t.Errorf("permanent error retried %d times", calls)
	}
}

func TestRetryWithBackoffSucceedsImmediately(t *testing.T) {
	calls := 0
	if err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(stderrors.New("plain")) {
		t.Error("plain error classified retryable")
	}
	if !IsRetryable(Retryable(stderrors.New("transient"))) {
		t.Error("wrapped error not classified retryable")
	}
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should stay nil")
	}
}
