package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mikelind28/chapter-champ/internal/domain"
	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
	"github.com/mikelind28/chapter-champ/internal/metadata/googlebooks"
)

// CatalogClient looks up book descriptors in an external catalog.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]domain.BookDetails, error)
	GetVolume(ctx context.Context, volumeID string) (*domain.BookDetails, error)
}

// BookService proxies catalog search so clients never talk to the upstream
// directly and quota keys stay server-side.
type BookService struct {
	catalog CatalogClient
	logger  *slog.Logger
}

// NewBookService creates a new book search service.
func NewBookService(catalog CatalogClient, logger *slog.Logger) *BookService {
	return &BookService{
		catalog: catalog,
		logger:  logger,
	}
}

// Search returns catalog volumes matching the query.
func (s *BookService) Search(ctx context.Context, query string) ([]domain.BookDetails, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.Validation("q is required")
	}

	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("catalog search failed", "query", query, "error", err)
		}
		return nil, domainerrors.Upstream("book catalog is unavailable").WithCause(err)
	}

	if results == nil {
		results = []domain.BookDetails{}
	}
	return results, nil
}

// GetVolume returns a single catalog volume by ID.
func (s *BookService) GetVolume(ctx context.Context, volumeID string) (*domain.BookDetails, error) {
	if volumeID == "" {
		return nil, domainerrors.Validation("volume ID is required")
	}

	book, err := s.catalog.GetVolume(ctx, volumeID)
	if err != nil {
		if errors.Is(err, googlebooks.ErrVolumeNotFound) {
			return nil, domainerrors.NotFound("volume not found")
		}
		if s.logger != nil {
			s.logger.Error("catalog volume fetch failed", "volume_id", volumeID, "error", err)
		}
		return nil, domainerrors.Upstream("book catalog is unavailable").WithCause(err)
	}

	return book, nil
}
