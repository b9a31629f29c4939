package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBooks(t *testing.T) {
	ts := setupTestServer(t)

	token := ts.registerUser(t, "champ", "champ@example.com").AccessToken

	resp := ts.api.Get("/api/v1/books/search?q=dune", bearer(token))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[SearchBooksResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Results, 1)
	assert.Equal(t, "Dune", envelope.Data.Results[0].Title)
}

func TestSearchBooks_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books/search?q=dune")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSearchBooks_EmptyQuery(t *testing.T) {
	ts := setupTestServer(t)

	token := ts.registerUser(t, "champ", "champ@example.com").AccessToken

	resp := ts.api.Get("/api/v1/books/search?q=", bearer(token))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSearchBooks_UpstreamFailure(t *testing.T) {
	ts := setupTestServer(t)

	token := ts.registerUser(t, "champ", "champ@example.com").AccessToken
	ts.catalog.err = errors.New("catalog down")

	resp := ts.api.Get("/api/v1/books/search?q=dune", bearer(token))
	assert.Equal(t, http.StatusBadGateway, resp.Code)

	var envelope testEnvelope[struct{}]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "UPSTREAM", envelope.Code)
}

func TestGetVolume(t *testing.T) {
	ts := setupTestServer(t)

	token := ts.registerUser(t, "champ", "champ@example.com").AccessToken

	resp := ts.api.Get("/api/v1/books/vol-dune", bearer(token))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[map[string]any]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "Dune", envelope.Data["title"])
}
