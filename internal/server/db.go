package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// ErrRecordNotFound is returned when an id has no match in a collection.
var ErrRecordNotFound = errors.New("record not found")

type record = map[string]any

// Database is a file-backed set of named collections in the style of
// json-server: the file holds an object whose keys are collection names
// and whose values are arrays of records. Every mutation rewrites the
// whole file.
type Database struct {
	mu          sync.Mutex
	path        string
	collections map[string][]record
}

// OpenDatabase loads the database file, creating it with the given
// collection names when it does not exist yet.
func OpenDatabase(path string, collections []string) (*Database, error) {
	db := &Database{
		path:        path,
		collections: make(map[string][]record),
	}
	for _, name := range collections {
		db.collections[name] = []record{}
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return db, db.flush()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}
	if err := json.Unmarshal(raw, &db.collections); err != nil {
		return nil, fmt.Errorf("failed to parse database file %s: %w", path, err)
	}
	for _, name := range collections {
		if db.collections[name] == nil {
			db.collections[name] = []record{}
		}
	}

	return db, nil
}

// Has reports whether a collection of that name exists.
func (db *Database) Has(name string) bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, ok := db.collections[name]
	return ok
}

// All returns a copy of the collection.
func (db *Database) All(name string) []record {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]record, len(db.collections[name]))
	copy(out, db.collections[name])
	return out
}

// Find returns the record with the given id.
func (db *Database) Find(name, id string) (record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, rec := range db.collections[name] {
		if recordID(rec) == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, name, id)
}

// Insert appends a record, assigning a sequential numeric id when the
// record carries none and stamping createdAt when absent.
func (db *Database) Insert(name string, rec record) (record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if recordID(rec) == "" {
		rec["id"] = db.nextID(name)
	}
	if _, ok := rec["createdAt"]; !ok {
		rec["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	}

	db.collections[name] = append(db.collections[name], rec)
	if err := db.flush(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Replace swaps the full record with the given id.
func (db *Database) Replace(name, id string, rec record) (record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, existing := range db.collections[name] {
		if recordID(existing) == id {
			rec["id"] = existing["id"]
			db.collections[name][i] = rec
			if err := db.flush(); err != nil {
				return nil, err
			}
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, name, id)
}

// Patch merges the given fields into the record with the given id.
func (db *Database) Patch(name, id string, fields record) (record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, existing := range db.collections[name] {
		if recordID(existing) == id {
			for k, v := range fields {
				if k == "id" {
					continue
				}
				existing[k] = v
			}
			db.collections[name][i] = existing
			if err := db.flush(); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, name, id)
}

// Delete removes the record with the given id.
func (db *Database) Delete(name, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	list := db.collections[name]
	for i, existing := range list {
		if recordID(existing) == id {
			db.collections[name] = append(list[:i], list[i+1:]...)
			return db.flush()
		}
	}
	return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, name, id)
}

// nextID returns max(numeric ids)+1 as a string, falling back to a
// timestamp id when no record has a numeric id. Caller holds the lock.
func (db *Database) nextID(name string) string {
	max := 0
	numeric := false
	for _, rec := range db.collections[name] {
		if n, err := strconv.Atoi(recordID(rec)); err == nil {
			numeric = true
			if n > max {
				max = n
			}
		}
	}
	if !numeric && len(db.collections[name]) > 0 {
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return strconv.Itoa(max + 1)
}

// flush rewrites the backing file. Caller holds the lock.
func (db *Database) flush() error {
	raw, err := json.MarshalIndent(db.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize database: %w", err)
	}
	if err := os.WriteFile(db.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write database file: %w", err)
	}
	return nil
}

// recordID normalizes the id field to a string; the file may hold ids
// as JSON numbers or strings.
func recordID(rec record) string {
	switch v := rec["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
