package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys, kept identical to the browser localStorage keys the
// dashboard used so a session survives a reimplementation swap.
const (
	keyToken   = "accessToken"
	keyProfile = "user"
)

// Store persists the bearer token and the logged-in user's profile blob
// between runs. It is the process-wide authentication context: set at
// login, read before every protected load, cleared at logout.
type Store struct {
	mu   sync.Mutex
	path string
	vals map[string]json.RawMessage
}

// Open loads the session file at path, creating parent directories so the
// first save succeeds. A missing file is an empty session, not an error.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Store{path: path, vals: map[string]json.RawMessage{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.vals); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.vals[keyToken]
	if !ok {
		return ""
	}
	var tok string
	if err := json.Unmarshal(raw, &tok); err != nil {
		return ""
	}
	return tok
}

// Profile returns the stored user blob verbatim; nil when absent.
func (s *Store) Profile() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vals[keyProfile]
}

// SetLogin stores the token and, when non-nil, the profile blob, then
// flushes to disk.
func (s *Store) SetLogin(token string, profile json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	s.vals[keyToken] = raw
	if profile != nil {
		s.vals[keyProfile] = profile
	}
	return s.save()
}

// Clear wipes the session (logout).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals = map[string]json.RawMessage{}
	return s.save()
}

func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.vals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
