package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikelind28/chapter-champ/internal/domain"
	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
	"github.com/mikelind28/chapter-champ/internal/metadata/googlebooks"
)

type stubCatalog struct {
	results []domain.BookDetails
	volume  *domain.BookDetails
	err     error
}

func (s *stubCatalog) Search(_ context.Context, _ string) ([]domain.BookDetails, error) {
	return s.results, s.err
}

func (s *stubCatalog) GetVolume(_ context.Context, _ string) (*domain.BookDetails, error) {
	return s.volume, s.err
}

func TestBookSearch(t *testing.T) {
	svc := NewBookService(&stubCatalog{
		results: []domain.BookDetails{{BookID: "vol-1", Title: "Dune"}},
	}, nil)

	results, err := svc.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestBookSearch_EmptyQuery(t *testing.T) {
	svc := NewBookService(&stubCatalog{}, nil)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestBookSearch_NilResultsBecomeEmptySlice(t *testing.T) {
	svc := NewBookService(&stubCatalog{}, nil)

	results, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestBookSearch_UpstreamFailure(t *testing.T) {
	svc := NewBookService(&stubCatalog{err: errors.New("boom")}, nil)

	_, err := svc.Search(context.Background(), "dune")
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
}

func TestGetVolume(t *testing.T) {
	svc := NewBookService(&stubCatalog{
		volume: &domain.BookDetails{BookID: "vol-1", Title: "Dune"},
	}, nil)

	book, err := svc.GetVolume(context.Background(), "vol-1")
	require.NoError(t, err)
	assert.Equal(t, "vol-1", book.BookID)
}

func TestGetVolume_NotFound(t *testing.T) {
	svc := NewBookService(&stubCatalog{err: googlebooks.ErrVolumeNotFound}, nil)

	_, err := svc.GetVolume(context.Background(), "vol-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
