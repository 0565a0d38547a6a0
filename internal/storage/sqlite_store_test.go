package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func newInitializedSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newInitializedSQLiteStore(t)

	if err := store.Set("users", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get("users")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"1"}]`)) {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newInitializedSQLiteStore(t)

	if err := store.Set("k", []byte(`"a"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("k", []byte(`"b"`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`"b"`)) {
		t.Errorf("expected latest value, got %s", got)
	}
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newInitializedSQLiteStore(t)

	if _, err := store.Get("absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newInitializedSQLiteStore(t)

	if err := store.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Errorf("repeat delete must not error: %v", err)
	}
}

func TestSQLiteStore_LoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before init")
	}
}

func TestSQLiteStore_LoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`"v"`)) {
		t.Errorf("unexpected value: %s", got)
	}
}
