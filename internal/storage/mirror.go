package storage

import (
	"errors"

	"github.com/julianstephens/habitkit/internal/logger"
)

// MirroredStore implements the primary-with-fallback-mirror policy behind
// the plain Store interface. Every write lands in the primary first and is
// then copied into the mirror as a best-effort backup; mirror failures are
// logged and swallowed. Reads try the primary and fall back to the mirror
// on a miss, opportunistically migrating hits back into the primary.
//
// This is redundancy against one backend being unavailable, not a
// consistency guarantee: the two stores are not transactionally coupled
// and may diverge. Last write wins.
type MirroredStore struct {
	primary Store
	mirror  Store
}

func NewMirroredStore(primary, mirror Store) *MirroredStore {
	return &MirroredStore{
		primary: primary,
		mirror:  mirror,
	}
}

func (s *MirroredStore) Init() error {
	if err := s.primary.Init(); err != nil {
		return err
	}
	if err := s.mirror.Init(); err != nil {
		logger.Warn("Mirror store init failed", "path", s.mirror.Path(), "error", err)
	}
	return nil
}

func (s *MirroredStore) Load() error {
	if err := s.primary.Load(); err != nil {
		return err
	}
	if err := s.mirror.Load(); err != nil {
		logger.Warn("Mirror store load failed", "path", s.mirror.Path(), "error", err)
	}
	return nil
}

func (s *MirroredStore) Close() error {
	if err := s.mirror.Close(); err != nil {
		logger.Warn("Mirror store close failed", "path", s.mirror.Path(), "error", err)
	}
	return s.primary.Close()
}

func (s *MirroredStore) Get(key string) ([]byte, error) {
	value, err := s.primary.Get(key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	value, merr := s.mirror.Get(key)
	if merr != nil {
		if errors.Is(merr, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Warn("Mirror store read failed", "key", key, "error", merr)
		return nil, ErrNotFound
	}

	// Migrate the mirror hit back into the primary so the next read is
	// served there.
	if perr := s.primary.Set(key, value); perr != nil {
		logger.Warn("Failed to migrate key back to primary store", "key", key, "error", perr)
	}

	return value, nil
}

func (s *MirroredStore) Set(key string, value []byte) error {
	if err := s.primary.Set(key, value); err != nil {
		return err
	}

	if err := s.mirror.Set(key, value); err != nil {
		logger.Warn("Mirror store write failed", "key", key, "error", err)
	}

	return nil
}

func (s *MirroredStore) Delete(key string) error {
	if err := s.primary.Delete(key); err != nil {
		return err
	}

	if err := s.mirror.Delete(key); err != nil {
		logger.Warn("Mirror store delete failed", "key", key, "error", err)
	}

	return nil
}

func (s *MirroredStore) Path() string {
	return s.primary.Path()
}

// Primary exposes the wrapped primary store for diagnostics.
func (s *MirroredStore) Primary() Store {
	return s.primary
}

// Mirror exposes the wrapped mirror store for diagnostics.
func (s *MirroredStore) Mirror() Store {
	return s.mirror
}
