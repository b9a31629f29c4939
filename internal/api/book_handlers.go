package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mikelind28/chapter-champ/internal/domain"
)

func (s *Server) registerBookRoutes() {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/search",
		Summary:     "Search the book catalog",
		Description: "Proxies a search against the external book catalog",
		Tags:        []string{"Books"},
		Security:    security,
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getVolume",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{volumeId}",
		Summary:     "Get a catalog volume",
		Description: "Fetches a single volume from the external book catalog",
		Tags:        []string{"Books"},
		Security:    security,
	}, s.handleGetVolume)
}

// === DTOs ===

// SearchBooksInput carries the catalog search query.
type SearchBooksInput struct {
	Query string `query:"q" doc:"Search query"`
}

// SearchBooksResponse contains catalog search results.
type SearchBooksResponse struct {
	Results []domain.BookDetails `json:"results" doc:"Matching catalog volumes"`
}

// SearchBooksOutput wraps the search response for Huma.
type SearchBooksOutput struct {
	Body SearchBooksResponse
}

// VolumeInput carries a catalog volume ID path parameter.
type VolumeInput struct {
	VolumeID string `path:"volumeId" doc:"Catalog volume ID"`
}

// VolumeOutput wraps a single volume response for Huma.
type VolumeOutput struct {
	Body domain.BookDetails
}

// === Handlers ===

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*SearchBooksOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	results, err := s.services.Book.Search(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	return &SearchBooksOutput{Body: SearchBooksResponse{Results: results}}, nil
}

func (s *Server) handleGetVolume(ctx context.Context, input *VolumeInput) (*VolumeOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Book.GetVolume(ctx, input.VolumeID)
	if err != nil {
		return nil, err
	}

	return &VolumeOutput{Body: *book}, nil
}
