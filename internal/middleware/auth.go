package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionValidator reports whether a bearer token belongs to a live session.
// *auth.Sessions satisfies it; tests can pass a stub.
type SessionValidator interface {
	Valid(token string) bool
}

// NewSessionGuard returns a middleware that rejects requests lacking a valid
// "Authorization: Bearer <token>" header with 401 and the API's JSON error
// envelope. Wire it on the protected route group only — login and health
// stay public.
func NewSessionGuard(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok || !sessions.Valid(token) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{
						"code":    "unauthorized",
						"message": "missing or invalid session token",
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
