package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// record is the durable session state. Absence of the file means signed-out.
type record struct {
	Token   string    `msgpack:"token"`
	SavedAt time.Time `msgpack:"saved_at"`
}

// Store owns the bearer token for the current session. It persists the token
// across process restarts and publishes every change to subscribers
// synchronously, so dependents always observe the new value before any
// follow-up work they schedule.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
	subs  []func(token string)
}

// New creates a store backed by the given file path. Call Load before use.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted token, if any. A missing file is not an error;
// the store simply starts signed-out. No network calls are made.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("session: read %s: %w", s.path, err)
	}
	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.token = rec.Token
	s.mu.Unlock()
	return nil
}

// Token returns the current bearer token, or the empty string when
// signed-out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers an observer invoked synchronously on every token
// change. Subscribers run on the mutating goroutine, after the new value is
// visible through Token.
func (s *Store) Subscribe(fn func(token string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// SetToken persists and publishes a new token. A new value overwrites the
// previous one; there is at most one active token at a time.
func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("session: create data dir: %w", err)
	}
	data, err := msgpack.Marshal(record{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	s.publish(token)
	return nil
}

// Clear removes the persisted token and publishes the signed-out state.
// It is idempotent and never fails: clearing an already-empty session is a
// no-op on disk.
func (s *Store) Clear() {
	_ = os.Remove(s.path)
	s.publish("")
}

func (s *Store) publish(token string) {
	s.mu.Lock()
	s.token = token
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(token)
	}
}
