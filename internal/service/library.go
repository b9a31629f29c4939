package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mikelind28/chapter-champ/internal/domain"
	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
	"github.com/mikelind28/chapter-champ/internal/store"
)

// LibraryService manages a user's saved books and their reading statuses.
type LibraryService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewLibraryService creates a new library service.
func NewLibraryService(store *store.Store, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:  store,
		logger: logger,
	}
}

// SaveBookRequest contains the catalog descriptor to save plus the initial
// reading status.
type SaveBookRequest struct {
	BookID        string   `json:"book_id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Authors       []string `json:"authors,omitempty"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image,omitempty"`
	InfoLink      string   `json:"info_link,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingsCount  int      `json:"ratings_count,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Status        string   `json:"status" validate:"required"`
}

// LibraryResponse is a user's library with derived per-status counts.
type LibraryResponse struct {
	Books []domain.SavedBook `json:"books"`
	domain.LibraryCounts
}

// GetLibrary returns the user's library with counts, newest-saved first.
func (s *LibraryService) GetLibrary(ctx context.Context, userID string) (*LibraryResponse, error) {
	lib, err := s.store.GetLibrary(ctx, userID)
	if err != nil {
		return nil, s.libraryError(err, userID, "get library")
	}
	return newLibraryResponse(lib), nil
}

// SaveBook adds a book to the user's library and returns the refreshed
// library. Saving a book that is already present fails with DuplicateBook
// and leaves the existing entry untouched.
func (s *LibraryService) SaveBook(ctx context.Context, userID string, req SaveBookRequest) (*LibraryResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	book := domain.BookDetails{
		BookID:        req.BookID,
		Title:         req.Title,
		Authors:       req.Authors,
		Description:   req.Description,
		Image:         req.Image,
		InfoLink:      req.InfoLink,
		Categories:    req.Categories,
		AverageRating: req.AverageRating,
		RatingsCount:  req.RatingsCount,
		PageCount:     req.PageCount,
	}

	if err := s.store.SaveBook(ctx, userID, book, status); err != nil {
		if errors.Is(err, store.ErrBookExists) {
			return nil, domainerrors.DuplicateBook("book is already in your library")
		}
		return nil, s.libraryError(err, userID, "save book")
	}

	return s.GetLibrary(ctx, userID)
}

// UpdateBookStatus changes the status of a saved book and returns the
// refreshed library. Setting the current status again succeeds as a no-op.
func (s *LibraryService) UpdateBookStatus(ctx context.Context, userID, bookID, statusValue string) (*LibraryResponse, error) {
	if bookID == "" {
		return nil, domainerrors.Validation("book_id is required")
	}

	status, err := parseStatus(statusValue)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateBookStatus(ctx, userID, bookID, status); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, domainerrors.BookNotFound("book is not in your library")
		}
		return nil, s.libraryError(err, userID, "update book status")
	}

	return s.GetLibrary(ctx, userID)
}

// RemoveBook deletes a saved book and returns the refreshed library.
func (s *LibraryService) RemoveBook(ctx context.Context, userID, bookID string) (*LibraryResponse, error) {
	if bookID == "" {
		return nil, domainerrors.Validation("book_id is required")
	}

	if err := s.store.RemoveBook(ctx, userID, bookID); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, domainerrors.BookNotFound("book is not in your library")
		}
		return nil, s.libraryError(err, userID, "remove book")
	}

	return s.GetLibrary(ctx, userID)
}

// libraryError classifies unexpected store failures. A corrupt status label
// is a data bug, not user input: log the detail, answer generically.
func (s *LibraryService) libraryError(err error, userID, op string) error {
	if errors.Is(err, store.ErrCorruptStatus) {
		if s.logger != nil {
			s.logger.Error("corrupt reading status in store",
				"user_id", userID,
				"error", err,
			)
		}
		return domainerrors.InvalidStatus("internal error").WithCause(err)
	}
	return storeError(err, op)
}

func parseStatus(value string) (domain.ReadingStatus, error) {
	status := domain.ReadingStatus(value)
	if !status.Valid() {
		return "", domainerrors.Validationf("status must be one of %v", domain.AllStatuses)
	}
	return status, nil
}

func newLibraryResponse(lib *domain.Library) *LibraryResponse {
	books := lib.Books
	if books == nil {
		books = []domain.SavedBook{}
	}
	return &LibraryResponse{
		Books:         books,
		LibraryCounts: lib.Counts(),
	}
}
