package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/model"
)

func TestRegisterLoginFlow(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	email := "cand-" + newTestID() + "@example.com"
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": email, "password": "secret", "role": model.RoleCandidate})
	require.Equal(t, http.StatusOK, resp.Code)

	// duplicate registration conflicts
	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": email, "password": "secret", "role": model.RoleCandidate})
	require.Equal(t, http.StatusConflict, resp.Code)

	// unknown role rejected
	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": "x-" + newTestID() + "@example.com", "password": "secret", "role": "admin"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// wrong password
	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": email, "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": email, "password": "secret"})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Token)
	require.Equal(t, model.RoleCandidate, out.Data.Role)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodGet, "/api/v1/match", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/match", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRoleEnforcement(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	candidateToken := registerAndLogin(t, router, "cand-"+newTestID()+"@example.com", model.RoleCandidate)
	recruiterToken := registerAndLogin(t, router, "rec-"+newTestID()+"@example.com", model.RoleRecruiter)

	// recruiters cannot use the candidate matching routes
	resp := doJSON(t, router, http.MethodGet, "/api/v1/match", recruiterToken, nil)
	require.Equal(t, http.StatusForbidden, resp.Code)

	// candidates cannot post jobs
	resp = doJSON(t, router, http.MethodPost, "/api/v1/recruiter/job", candidateToken,
		map[string]interface{}{"title": "t", "description": "d", "skills_required": []string{"go"}})
	require.Equal(t, http.StatusForbidden, resp.Code)
}
