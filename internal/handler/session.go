package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is the body returned on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /login. A correct password yields a session token to
// present as "Authorization: Bearer <token>" on every protected endpoint.
// A wrong password gets 401; the error never says whether the password was
// close.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be JSON with a password field")
		return
	}

	token, err := s.sessions.Login(req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "incorrect password")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /logout. It invalidates the presented session token.
// Always returns 204 — logging out an already-dead session is not an error.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		s.sessions.Logout(strings.TrimSpace(token))
	}
	w.WriteHeader(http.StatusNoContent)
}
