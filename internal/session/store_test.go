package session

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "session.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, path
}

func TestLoginRoundTripSurvivesReopen(t *testing.T) {
	s, path := tempStore(t)

	profile := json.RawMessage(`{"accessToken":"abc","name":"Admin"}`)
	if err := s.SetLogin("abc", profile); err != nil {
		t.Fatalf("set login: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Token(); got != "abc" {
		t.Fatalf("token after reopen = %q", got)
	}
	if got := string(reopened.Profile()); got != string(profile) {
		t.Fatalf("profile after reopen = %s", got)
	}
}

func TestClearWipesSession(t *testing.T) {
	s, _ := tempStore(t)
	if err := s.SetLogin("abc", nil); err != nil {
		t.Fatalf("set login: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Token() != "" || s.Profile() != nil {
		t.Fatalf("session not cleared")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestAuthorized(t *testing.T) {
	s, _ := tempStore(t)

	if s.Authorized() {
		t.Fatalf("empty session passed the guard")
	}

	// non-JWT placeholder token passes on presence alone
	if err := s.SetLogin("dummy-token", nil); err != nil {
		t.Fatalf("set login: %v", err)
	}
	if !s.Authorized() {
		t.Fatalf("placeholder token rejected")
	}

	if err := s.SetLogin(signedToken(t, time.Now().Add(time.Hour)), nil); err != nil {
		t.Fatalf("set login: %v", err)
	}
	if !s.Authorized() {
		t.Fatalf("live token rejected")
	}

	if err := s.SetLogin(signedToken(t, time.Now().Add(-time.Hour)), nil); err != nil {
		t.Fatalf("set login: %v", err)
	}
	if s.Authorized() {
		t.Fatalf("expired token passed the guard")
	}
}
