package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mikelind28/chapter-champ/internal/domain"
	"github.com/mikelind28/chapter-champ/internal/service"
)

func (s *Server) registerLibraryRoutes() {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(s.api, huma.Operation{
		OperationID: "getLibrary",
		Method:      http.MethodGet,
		Path:        "/api/v1/library",
		Summary:     "Get library",
		Description: "Returns the caller's saved books with per-status counts, newest first",
		Tags:        []string{"Library"},
		Security:    security,
	}, s.handleGetLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "saveBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/library/books",
		Summary:     "Save a book",
		Description: "Adds a book to the caller's library with an initial reading status",
		Tags:        []string{"Library"},
		Security:    security,
	}, s.handleSaveBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBookStatus",
		Method:      http.MethodPatch,
		Path:        "/api/v1/library/books/{bookId}",
		Summary:     "Update reading status",
		Description: "Changes the reading status of a saved book",
		Tags:        []string{"Library"},
		Security:    security,
	}, s.handleUpdateBookStatus)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/library/books/{bookId}",
		Summary:     "Remove a book",
		Description: "Deletes a saved book from the caller's library",
		Tags:        []string{"Library"},
		Security:    security,
	}, s.handleRemoveBook)
}

// === DTOs ===

// SaveBookRequest is the request body for saving a book.
type SaveBookRequest struct {
	BookID        string   `json:"book_id" validate:"required" doc:"Catalog volume ID"`
	Title         string   `json:"title" validate:"required" doc:"Book title"`
	Authors       []string `json:"authors,omitempty" doc:"Author names"`
	Description   string   `json:"description,omitempty" doc:"Book description"`
	Image         string   `json:"image,omitempty" doc:"Cover image URL"`
	InfoLink      string   `json:"info_link,omitempty" doc:"Catalog info page URL"`
	Categories    []string `json:"categories,omitempty" doc:"Subject categories"`
	AverageRating float64  `json:"average_rating,omitempty" doc:"Catalog average rating"`
	RatingsCount  int      `json:"ratings_count,omitempty" doc:"Number of catalog ratings"`
	PageCount     int      `json:"page_count,omitempty" doc:"Number of pages"`
	Status        string   `json:"status" validate:"required" doc:"Initial reading status" enum:"WANT_TO_READ,CURRENTLY_READING,FINISHED_READING,FAVORITE"`
}

// SaveBookInput wraps the save request for Huma.
type SaveBookInput struct {
	Body SaveBookRequest
}

// UpdateStatusRequest is the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required" doc:"New reading status" enum:"WANT_TO_READ,CURRENTLY_READING,FINISHED_READING,FAVORITE"`
}

// UpdateStatusInput wraps the status change request for Huma.
type UpdateStatusInput struct {
	BookID string `path:"bookId" doc:"Catalog volume ID"`
	Body   UpdateStatusRequest
}

// BookIDInput carries a book ID path parameter.
type BookIDInput struct {
	BookID string `path:"bookId" doc:"Catalog volume ID"`
}

// LibraryResponse contains the caller's saved books and derived counts.
type LibraryResponse struct {
	Books            []domain.SavedBook `json:"books" doc:"Saved books, newest first"`
	BookCount        int                `json:"book_count" doc:"Total saved books"`
	WantToRead       int                `json:"want_to_read_count" doc:"Books marked want-to-read"`
	CurrentlyReading int                `json:"currently_reading_count" doc:"Books marked currently-reading"`
	FinishedReading  int                `json:"finished_reading_count" doc:"Books marked finished"`
	Favorite         int                `json:"favorite_count" doc:"Books marked favorite"`
}

// LibraryOutput wraps the library response for Huma.
type LibraryOutput struct {
	Body LibraryResponse
}

// === Handlers ===

func (s *Server) handleGetLibrary(ctx context.Context, _ *struct{}) (*LibraryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := s.services.Library.GetLibrary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &LibraryOutput{Body: mapLibraryResponse(lib)}, nil
}

func (s *Server) handleSaveBook(ctx context.Context, input *SaveBookInput) (*LibraryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := s.services.Library.SaveBook(ctx, userID, service.SaveBookRequest{
		BookID:        input.Body.BookID,
		Title:         input.Body.Title,
		Authors:       input.Body.Authors,
		Description:   input.Body.Description,
		Image:         input.Body.Image,
		InfoLink:      input.Body.InfoLink,
		Categories:    input.Body.Categories,
		AverageRating: input.Body.AverageRating,
		RatingsCount:  input.Body.RatingsCount,
		PageCount:     input.Body.PageCount,
		Status:        input.Body.Status,
	})
	if err != nil {
		return nil, err
	}

	return &LibraryOutput{Body: mapLibraryResponse(lib)}, nil
}

func (s *Server) handleUpdateBookStatus(ctx context.Context, input *UpdateStatusInput) (*LibraryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := s.services.Library.UpdateBookStatus(ctx, userID, input.BookID, input.Body.Status)
	if err != nil {
		return nil, err
	}

	return &LibraryOutput{Body: mapLibraryResponse(lib)}, nil
}

func (s *Server) handleRemoveBook(ctx context.Context, input *BookIDInput) (*LibraryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := s.services.Library.RemoveBook(ctx, userID, input.BookID)
	if err != nil {
		return nil, err
	}

	return &LibraryOutput{Body: mapLibraryResponse(lib)}, nil
}

// === Helpers ===

func mapLibraryResponse(lib *service.LibraryResponse) LibraryResponse {
	return LibraryResponse{
		Books:            lib.Books,
		BookCount:        lib.LibraryCounts.Books,
		WantToRead:       lib.WantToRead,
		CurrentlyReading: lib.CurrentlyReading,
		FinishedReading:  lib.FinishedReading,
		Favorite:         lib.Favorite,
	}
}
