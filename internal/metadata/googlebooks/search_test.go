package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("", nil)
	c.baseURL = srv.URL
	return c
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "dune herbert", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"id": "vol-1",
				"volumeInfo": {
					"title": "Dune",
					"authors": ["Frank Herbert"],
					"description": "A desert planet.",
					"categories": ["Fiction"],
					"averageRating": 4.5,
					"ratingsCount": 7201,
					"pageCount": 412,
					"infoLink": "https://books.example/dune",
					"imageLinks": {"thumbnail": "https://img.example/dune.jpg"}
				}
			}]
		}`))
	})

	results, err := c.Search(context.Background(), "dune herbert")
	require.NoError(t, err)
	require.Len(t, results, 1)

	book := results[0]
	assert.Equal(t, "vol-1", book.BookID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, "https://img.example/dune.jpg", book.Image)
	assert.Equal(t, 4.5, book.AverageRating)
	assert.Equal(t, 7201, book.RatingsCount)
	assert.Equal(t, 412, book.PageCount)
}

func TestSearch_ThumbnailFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"id": "vol-1",
				"volumeInfo": {
					"title": "Dune",
					"imageLinks": {"smallThumbnail": "https://img.example/small.jpg"}
				}
			}]
		}`))
	})

	results, err := c.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://img.example/small.jpg", results[0].Image)
}

func TestSearch_EmptyResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})

	results, err := c.Search(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_UpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Search(context.Background(), "dune")
	assert.Error(t, err)
}

func TestGetVolume(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes/vol-1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "vol-1",
			"volumeInfo": {"title": "Dune", "pageCount": 412}
		}`))
	})

	book, err := c.GetVolume(context.Background(), "vol-1")
	require.NoError(t, err)
	assert.Equal(t, "vol-1", book.BookID)
	assert.Equal(t, "Dune", book.Title)
}

func TestGetVolume_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetVolume(context.Background(), "vol-missing")
	assert.ErrorIs(t, err, ErrVolumeNotFound)
}
