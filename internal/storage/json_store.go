package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonDocument struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// JSONStore keeps all keys in a single JSON file. It is the synchronous
// mirror backend: cheap, human-inspectable, and available even when the
// database file cannot be opened.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// The mirror is created lazily on first write.
			s.doc = &jsonDocument{
				Version: 1,
				Entries: make(map[string]json.RawMessage),
			}
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Entries == nil {
		s.doc.Entries = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	value, ok := s.doc.Entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	return value, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}

	s.doc.Entries[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.doc.Entries[key]; !ok {
		return nil
	}

	delete(s.doc.Entries, key)
	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
