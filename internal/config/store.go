package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
)

// GroupSeparator joins group names and keys ("mainwindow.geometry").
const GroupSeparator = "."

// Store is the persisted key/value settings namespace. Values written with Set
// are staged in memory and only become durable once Sync commits them to the
// backend. Reads see staged values first.
//
// The map state is mutex guarded, but the group stack is shared: BeginGroup
// and EndGroup must be driven from the UI goroutine only.
type Store struct {
	mu      sync.Mutex
	backend Backend
	staged  map[string]string
	groups  []string
	logger  *slog.Logger
}

// NewStore creates a store on top of the given backend.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		staged:  make(map[string]string),
		logger:  logger.With("component", "settings"),
	}
}

// BeginGroup scopes subsequent keys under name until the matching EndGroup.
func (s *Store) BeginGroup(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, name)
}

// EndGroup closes the innermost group.
func (s *Store) EndGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) == 0 {
		s.logger.Debug("EndGroup called without an open group")
		return
	}
	s.groups = s.groups[:len(s.groups)-1]
}

// Group returns the current group prefix, empty when no group is open.
func (s *Store) Group() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.groups, GroupSeparator)
}

// WithGroup runs fn inside the named group. The group is closed on every exit
// path, including a panic in fn.
func (s *Store) WithGroup(name string, fn func() error) error {
	s.BeginGroup(name)
	defer s.EndGroup()
	return fn()
}

func (s *Store) fullKey(key string) string {
	if len(s.groups) == 0 {
		return key
	}
	return strings.Join(s.groups, GroupSeparator) + GroupSeparator + key
}

// Get decodes the value stored under key into dst. It returns false, leaving
// dst untouched, when the key is absent or the stored value cannot be decoded.
func (s *Store) Get(key string, dst any) bool {
	s.mu.Lock()
	full := s.fullKey(key)
	raw, ok := s.staged[full]
	s.mu.Unlock()

	if !ok {
		var err error
		raw, ok, err = s.backend.Lookup(full)
		if err != nil {
			s.logger.Warn("settings lookup failed", "key", full, "error", err)
			return false
		}
		if !ok {
			return false
		}
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("ignoring undecodable setting", "key", full, "error", err)
		return false
	}
	return true
}

// Value returns the value stored under key, or def when absent.
func Value[T any](s *Store, key string, def T) T {
	var v T
	if !s.Get(key, &v) {
		return def
	}
	return v
}

// Set stages value under key. It is persisted by the next Sync.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[s.fullKey(key)] = string(raw)
	return nil
}

// Pending returns the number of staged, uncommitted values.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.staged)
}

// Sync commits every staged value to the backend.
func (s *Store) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.staged) == 0 {
		return nil
	}

	if err := s.backend.Commit(maps.Clone(s.staged)); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	s.logger.Debug("settings committed", "count", len(s.staged))
	clear(s.staged)
	return nil
}

// Close releases the backend. Staged values that were not synced are lost.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.staged); n > 0 {
		s.logger.Warn("closing settings with uncommitted values", "count", n)
	}
	return s.backend.Close()
}
