package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "v1" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "v1")
	}

	// Overwrite
	c.Set(ctx, "k", "v2")
	got, _, _ = c.Get(ctx, "k")
	if got != "v2" {
		t.Errorf("after overwrite got %q, want %q", got, "v2")
	}
}

func TestGetMissing(t *testing.T) {
	c := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || got != "" {
		t.Errorf("Get missing = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")
	if err := c.Remove(ctx, "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("expected a to be removed")
	}
	if _, ok, _ := c.Get(ctx, "b"); !ok {
		t.Error("expected b to survive")
	}

	// Removing an absent key is fine
	if err := c.Remove(ctx, "a"); err != nil {
		t.Errorf("second remove: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c1, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c1.Set(ctx, "chats", `[{"id":"x"}]`)
	c1.Close()

	c2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c2.Close()

	got, ok, err := c2.Get(ctx, "chats")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if got != `[{"id":"x"}]` {
		t.Errorf("got %q", got)
	}
}

func TestInMemoryDatabase(t *testing.T) {
	ctx := context.Background()
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open :memory: %v", err)
	}
	defer c.Close()

	c.Set(ctx, "k", "v")
	if got, ok, _ := c.Get(ctx, "k"); !ok || got != "v" {
		t.Errorf("Get = (%q, %v)", got, ok)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	c, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.Set(ctx, "b", "22")
	c.Set(ctx, "a", "1")

	st, err := c.Stats(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 2 {
		t.Fatalf("entries = %d, want 2", st.Entries)
	}
	if st.Keys[0].Key != "a" || st.Keys[1].Key != "b" {
		t.Errorf("keys = %s %s, want a b", st.Keys[0].Key, st.Keys[1].Key)
	}
	if st.Keys[1].Bytes != 2 {
		t.Errorf("bytes for b = %d, want 2", st.Keys[1].Bytes)
	}
	if st.Keys[0].Rev == "" {
		t.Error("expected a revision on every entry")
	}
	if st.DBSizeBytes == 0 {
		t.Error("expected non-zero db size")
	}
}

func TestRevisionChangesOnSet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	c, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.Set(ctx, "k", "1")
	st1, _ := c.Stats(ctx, dbPath)
	c.Set(ctx, "k", "2")
	st2, _ := c.Stats(ctx, dbPath)

	if st1.Keys[0].Rev == st2.Keys[0].Rev {
		t.Errorf("expected new revision after set, both are %s", st1.Keys[0].Rev)
	}
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "k", "v")
	m.Close()

	if _, _, err := m.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after close: err = %v, want ErrClosed", err)
	}
	if err := m.Set(ctx, "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after close: err = %v, want ErrClosed", err)
	}
	if err := m.Remove(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Remove after close: err = %v, want ErrClosed", err)
	}
}
