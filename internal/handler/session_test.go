package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cna-archives/carnet-bord/internal/auth"
	"github.com/cna-archives/carnet-bord/internal/handler"
)

func newSessionHandler(sessions handler.SessionManager) http.Handler {
	srv := handler.NewServer(&mockLogbook{}, sessions)
	return srv.Routes(passthroughGuard)
}

func TestLogin_200(t *testing.T) {
	sessions := &mockSessions{
		login: func(password string) (string, error) {
			require.Equal(t, "cna2024", password)
			return "issued-token", nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, map[string]string{"password": "cna2024"}))
	rec := httptest.NewRecorder()

	newSessionHandler(sessions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "issued-token", resp.Token)
}

func TestLogin_401_WrongPassword(t *testing.T) {
	sessions := &mockSessions{
		login: func(string) (string, error) { return "", auth.ErrBadPassword },
	}

	req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, map[string]string{"password": "nope"}))
	rec := httptest.NewRecorder()

	newSessionHandler(sessions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unauthorized", resp.Error.Code)
}

func TestLogin_400_MalformedBody(t *testing.T) {
	sessions := &mockSessions{
		login: func(string) (string, error) { return "", nil },
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()

	newSessionHandler(sessions).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_204(t *testing.T) {
	var revoked string
	sessions := &mockSessions{
		logout: func(token string) { revoked = token },
	}

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	newSessionHandler(sessions).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "some-token", revoked)
}
