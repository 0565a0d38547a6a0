package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := store.Set("users", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh store over the same file sees the value.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load failed: %v", err)
	}
	got, err := reopened.Get("users")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"1"}]`)) {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestJSONStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load of a missing file must succeed: %v", err)
	}
	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONStore_SetRejectsInvalidJSON(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Set("k", []byte("{not json")); err == nil {
		t.Error("expected invalid JSON to be rejected")
	}
}

func TestJSONStore_DeleteAbsentKeyIsNoop(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Delete("absent"); err != nil {
		t.Errorf("deleting an absent key must not error: %v", err)
	}
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Init(); err == nil {
		t.Error("expected Init to refuse an existing file")
	}
}
