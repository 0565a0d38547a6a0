package storage

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

// faultStore wraps a Store and fails selected operations.
type faultStore struct {
	Store
	failSet bool
	failGet bool
}

func (f *faultStore) Set(key string, value []byte) error {
	if f.failSet {
		return fmt.Errorf("set refused")
	}
	return f.Store.Set(key, value)
}

func (f *faultStore) Get(key string) ([]byte, error) {
	if f.failGet {
		return nil, fmt.Errorf("get refused")
	}
	return f.Store.Get(key)
}

func newLoadedJSONStore(t *testing.T, name string) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), name))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestMirroredStore_WritesLandInBoth(t *testing.T) {
	primary := newLoadedJSONStore(t, "primary.json")
	mirror := newLoadedJSONStore(t, "mirror.json")
	store := NewMirroredStore(primary, mirror)

	if err := store.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	for _, s := range []Store{primary, mirror} {
		got, err := s.Get("k")
		if err != nil {
			t.Fatalf("Get from %s failed: %v", s.Path(), err)
		}
		if !bytes.Equal(got, []byte(`"v"`)) {
			t.Errorf("unexpected value in %s: %s", s.Path(), got)
		}
	}
}

func TestMirroredStore_MirrorWriteFailureIsSwallowed(t *testing.T) {
	primary := newLoadedJSONStore(t, "primary.json")
	mirror := &faultStore{Store: newLoadedJSONStore(t, "mirror.json"), failSet: true}
	store := NewMirroredStore(primary, mirror)

	if err := store.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("mirror failures must not surface, got: %v", err)
	}

	if _, err := primary.Get("k"); err != nil {
		t.Errorf("expected value in primary: %v", err)
	}
}

func TestMirroredStore_PrimaryWriteFailureSurfaces(t *testing.T) {
	primary := &faultStore{Store: newLoadedJSONStore(t, "primary.json"), failSet: true}
	mirror := newLoadedJSONStore(t, "mirror.json")
	store := NewMirroredStore(primary, mirror)

	if err := store.Set("k", []byte(`"v"`)); err == nil {
		t.Fatal("expected primary failure to surface")
	}

	// Nothing may land in the mirror when the primary write failed.
	if _, err := mirror.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected mirror untouched, got %v", err)
	}
}

func TestMirroredStore_GetFallsBackAndMigrates(t *testing.T) {
	primary := newLoadedJSONStore(t, "primary.json")
	mirror := newLoadedJSONStore(t, "mirror.json")
	store := NewMirroredStore(primary, mirror)

	// Seed only the mirror, simulating a value written while the primary
	// was unavailable.
	if err := mirror.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`"v"`)) {
		t.Errorf("unexpected value: %s", got)
	}

	// The hit must have been migrated back into the primary.
	if _, err := primary.Get("k"); err != nil {
		t.Errorf("expected value migrated into primary: %v", err)
	}
}

func TestMirroredStore_GetMissesBothStores(t *testing.T) {
	store := NewMirroredStore(
		newLoadedJSONStore(t, "primary.json"),
		newLoadedJSONStore(t, "mirror.json"),
	)

	if _, err := store.Get("absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMirroredStore_MirrorReadFailureMapsToNotFound(t *testing.T) {
	primary := newLoadedJSONStore(t, "primary.json")
	mirror := &faultStore{Store: newLoadedJSONStore(t, "mirror.json"), failGet: true}
	store := NewMirroredStore(primary, mirror)

	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound when the mirror is broken, got %v", err)
	}
}
