// Package session persists the operator's API credential between command
// invocations.
//
// A session holds exactly two values issued at login: the bearer token and the
// operator's role. It expires seven days after login; expiry is checked on
// every read, and logout removes the session entirely. The store is injected
// into the HTTP gateway and the route guards rather than read from ambient
// process state, so both can be exercised in tests with an in-memory store.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TTL is how long a session remains valid after login.
const TTL = 7 * 24 * time.Hour

var (
	// ErrNoSession is returned when no credential has been saved or the
	// session file cannot be found.
	ErrNoSession = errors.New("not logged in")

	// ErrSessionExpired is returned when a saved credential has passed its
	// expiry. The caller should prompt for a fresh login.
	ErrSessionExpired = errors.New("session expired")
)

// Credentials is the persisted login state.
type Credentials struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store reads and writes the operator's credential. Current is called on every
// outgoing request; Save only at login and Clear only at logout, so the
// credential is effectively immutable for the lifetime of a session.
type Store interface {
	// Current returns the active credential, or ErrNoSession /
	// ErrSessionExpired when there is none to use.
	Current() (Credentials, error)

	// Save stores a fresh credential with a new expiry of now+TTL.
	Save(token, role string) error

	// Clear removes the credential.
	Clear() error
}

// FileStore persists credentials as a JSON file, created with 0600 since it
// holds a live token.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a store backed by the given path. An empty path
// resolves to patil-admin/session.json under the user config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		path = filepath.Join(dir, "patil-admin", "session.json")
	}
	return &FileStore{path: path, now: time.Now}, nil
}

func (s *FileStore) Current() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNoSession
		}
		return Credentials{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if creds.Token == "" {
		return Credentials{}, ErrNoSession
	}
	if s.now().After(creds.ExpiresAt) {
		return Credentials{}, ErrSessionExpired
	}
	return creds, nil
}

func (s *FileStore) Save(token, role string) error {
	creds := Credentials{
		Token:     token,
		Role:      role,
		ExpiresAt: s.now().Add(TTL),
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	creds Credentials
	now   func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// NewMemoryStoreWithToken returns a store pre-loaded with an unexpired token.
func NewMemoryStoreWithToken(token, role string) *MemoryStore {
	s := NewMemoryStore()
	_ = s.Save(token, role)
	return s
}

func (s *MemoryStore) Current() (Credentials, error) {
	if s.creds.Token == "" {
		return Credentials{}, ErrNoSession
	}
	if s.now().After(s.creds.ExpiresAt) {
		return Credentials{}, ErrSessionExpired
	}
	return s.creds, nil
}

func (s *MemoryStore) Save(token, role string) error {
	s.creds = Credentials{Token: token, Role: role, ExpiresAt: s.now().Add(TTL)}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.creds = Credentials{}
	return nil
}
