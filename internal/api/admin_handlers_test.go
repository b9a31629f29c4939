package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	ts := setupTestServer(t)

	admin := ts.registerUser(t, "admin", "admin@example.com")
	ts.registerUser(t, "champ", "champ@example.com")
	ts.promoteToAdmin(t, admin.User.ID)

	resp := ts.api.Get("/api/v1/admin/users", bearer(admin.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[UserListResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Users, 2)
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	ts := setupTestServer(t)

	user := ts.registerUser(t, "champ", "champ@example.com")

	resp := ts.api.Get("/api/v1/admin/users", bearer(user.AccessToken))
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var envelope testEnvelope[struct{}]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "FORBIDDEN", envelope.Code)

	// No token at all is 401, not 403.
	resp = ts.api.Get("/api/v1/admin/users")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminPromoteUser(t *testing.T) {
	ts := setupTestServer(t)

	admin := ts.registerUser(t, "admin", "admin@example.com")
	user := ts.registerUser(t, "champ", "champ@example.com")
	ts.promoteToAdmin(t, admin.User.ID)

	resp := ts.api.Post("/api/v1/admin/users/"+user.User.ID+"/promote", bearer(admin.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[UserResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.IsAdmin)

	// The promoted user can now reach admin routes.
	resp = ts.api.Get("/api/v1/admin/users", bearer(user.AccessToken))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminDeleteUser(t *testing.T) {
	ts := setupTestServer(t)

	admin := ts.registerUser(t, "admin", "admin@example.com")
	user := ts.registerUser(t, "champ", "champ@example.com")
	ts.promoteToAdmin(t, admin.User.ID)

	resp := ts.api.Delete("/api/v1/admin/users/"+user.User.ID, bearer(admin.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// The deleted user's token no longer works.
	resp = ts.api.Get("/api/v1/users/me", bearer(user.AccessToken))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Self-deletion is refused.
	resp = ts.api.Delete("/api/v1/admin/users/"+admin.User.ID, bearer(admin.AccessToken))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
