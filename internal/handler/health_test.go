package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cna-archives/carnet-bord/internal/auth"
	"github.com/cna-archives/carnet-bord/internal/domain"
	"github.com/cna-archives/carnet-bord/internal/handler"
	"github.com/cna-archives/carnet-bord/internal/logbook"
	"github.com/cna-archives/carnet-bord/internal/middleware"
)

func TestGetHealth_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockLogbook{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

// TestRoutes_GuardScope wires the real session guard the way main.go does and
// verifies the public/protected split: health and login stay reachable
// without a token, everything else requires one.
func TestRoutes_GuardScope(t *testing.T) {
	sessions := auth.NewSessions("cna2024")
	lb := &mockLogbook{
		query: func(_ logbook.Filter) []domain.Trip { return []domain.Trip{} },
	}
	srv := handler.NewServer(lb, sessions)
	h := srv.Routes(middleware.NewSessionGuard(sessions))

	// Public: /healthz needs no token.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Protected: /trips without a token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Login, then retry with the issued token.
	req = httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, map[string]string{"password": "cna2024"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var login handler.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	req = httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Logout kills the session; the same token is now rejected.
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
