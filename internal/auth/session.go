// Package auth implements the shared-password access gate for the
// Carnet de Bord API. A single password guards the whole application;
// a successful login yields an opaque bearer token held in memory for
// the process lifetime.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrBadPassword is returned by Login when the supplied password does not
// match. Handlers should map this to HTTP 401.
var ErrBadPassword = errors.New("incorrect password")

// Sessions holds the shared password and the set of live session tokens.
// Construct once in main and share by reference.
type Sessions struct {
	mu       sync.Mutex
	password string
	tokens   map[string]struct{}
}

// NewSessions builds a session store guarding access with the given password.
func NewSessions(password string) *Sessions {
	return &Sessions{
		password: password,
		tokens:   make(map[string]struct{}),
	}
}

// Login checks the password and, on success, mints and registers a new
// session token. The comparison is constant-time so response timing does
// not leak how much of the password matched.
func (s *Sessions) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrBadPassword
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// Logout invalidates a token. Unknown tokens are ignored — logging out
// twice is harmless.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Valid reports whether token belongs to a live session.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}
