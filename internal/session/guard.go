package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Authorized reports whether a credential is present and not visibly
// expired. The signature is not verified here, that is the server's job;
// the guard only refuses to start protected loads with a token the server
// is guaranteed to reject. Tokens that are not JWTs at all (the offline
// dummy token) pass on presence alone, like the original guard.
func (s *Store) Authorized() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}
