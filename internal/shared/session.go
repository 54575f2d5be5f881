package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/streamix/streamix-cli/internal/models"
)

// SessionStore is the single holder of the authenticated session, replacing
// scattered browser-storage reads in the hosted web client. Sessions saved
// with Remember set are written to disk and survive restarts; otherwise the
// session lives only for the current process.
//
// Clear is idempotent: concurrent 401 handlers may all invoke it and each
// performs the same wholesale cleanup.
type SessionStore struct {
	path string

	mu      sync.Mutex
	current *models.Session
}

// NewSessionStore creates a store backed by the given file path and loads any
// previously remembered session from it.
func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{path: path}
	s.load()
	return s
}

func (s *SessionStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil || !session.Valid() {
		return
	}
	s.current = &session
}

// Current returns the active session, if any.
func (s *SessionStore) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Token returns the bearer token of the active session, or "".
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// Save stores the session, persisting it to disk when Remember is set.
func (s *SessionStore) Save(session models.Session) error {
	if !session.Valid() {
		return fmt.Errorf("%w: session missing token or user id", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session

	if !session.Remember {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the in-memory session and deletes the session file.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
