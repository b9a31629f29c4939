package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mikelind28/chapter-champ/internal/domain"
)

// Key scheme: lib:{userID}:{bookID}.
const libraryPrefix = "lib:"

var (
	// ErrBookExists is returned when saving a book that is already in the library.
	ErrBookExists = errors.New("book already saved")
	// ErrBookNotFound is returned when mutating a book absent from the library.
	ErrBookNotFound = errors.New("book not in library")
	// ErrCorruptStatus is returned when a persisted record carries a status
	// label outside the known vocabulary.
	ErrCorruptStatus = errors.New("corrupt reading status in store")
)

// savedBookRecord is the persisted shape of a library entry. Status holds
// the storage vocabulary label ("Want to Read", ...); translation to the
// canonical vocabulary happens on every read and write in this file and
// nowhere else.
type savedBookRecord struct {
	domain.BookDetails
	Status    string    `json:"status"`
	SavedAt   time.Time `json:"saved_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func libraryKey(userID, bookID string) []byte {
	return fmt.Appendf(nil, "%s%s:%s", libraryPrefix, userID, bookID)
}

func userLibraryPrefix(userID string) []byte {
	return fmt.Appendf(nil, "%s%s:", libraryPrefix, userID)
}

// SaveBook adds a book to the user's library with the given status.
// The existence check and the insert happen inside one transaction, so two
// concurrent saves of the same book yield exactly one entry and one
// ErrBookExists.
func (s *Store) SaveBook(_ context.Context, userID string, book domain.BookDetails, status domain.ReadingStatus) error {
	label, err := status.StorageLabel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptStatus, err)
	}

	now := time.Now()
	record := savedBookRecord{
		BookDetails: book,
		Status:      label,
		SavedAt:     now,
		UpdatedAt:   now,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal saved book: %w", err)
	}

	key := libraryKey(userID, book.BookID)

	err = s.update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrBookExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check saved book: %w", err)
		}

		return txn.Set(key, data)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("book saved",
			"user_id", userID,
			"book_id", book.BookID,
			"status", string(status),
		)
	}
	return nil
}

// UpdateBookStatus changes the status of an existing library entry in place.
// Setting the current status again is a no-op that still succeeds.
// Returns ErrBookNotFound if the book is not in the library.
func (s *Store) UpdateBookStatus(_ context.Context, userID, bookID string, status domain.ReadingStatus) error {
	label, err := status.StorageLabel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptStatus, err)
	}

	key := libraryKey(userID, bookID)

	err = s.update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrBookNotFound
			}
			return fmt.Errorf("get saved book: %w", err)
		}

		var record savedBookRecord
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		}); err != nil {
			return fmt.Errorf("unmarshal saved book: %w", err)
		}

		record.Status = label
		record.UpdatedAt = time.Now()

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal saved book: %w", err)
		}

		return txn.Set(key, data)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("book status updated",
			"user_id", userID,
			"book_id", bookID,
			"status", string(status),
		)
	}
	return nil
}

// RemoveBook deletes a library entry.
// Returns ErrBookNotFound if the book is not in the library; the library is
// left unchanged in that case.
func (s *Store) RemoveBook(_ context.Context, userID, bookID string) error {
	key := libraryKey(userID, bookID)

	err := s.update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrBookNotFound
			}
			return fmt.Errorf("check saved book: %w", err)
		}

		return txn.Delete(key)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("book removed", "user_id", userID, "book_id", bookID)
	}
	return nil
}

// GetLibrary returns the user's full library with canonical statuses,
// ordered newest-saved first.
func (s *Store) GetLibrary(_ context.Context, userID string) (*domain.Library, error) {
	prefix := userLibraryPrefix(userID)
	var books []domain.SavedBook

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var record savedBookRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return fmt.Errorf("unmarshal saved book: %w", err)
				}

				status, err := domain.StatusFromStorageLabel(record.Status)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrCorruptStatus, err)
				}

				books = append(books, domain.SavedBook{
					BookDetails: record.BookDetails,
					Status:      status,
					SavedAt:     record.SavedAt,
					UpdatedAt:   record.UpdatedAt,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get library: %w", err)
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].SavedAt.After(books[j].SavedAt)
	})

	return &domain.Library{Books: books}, nil
}

// GetSavedBook returns a single library entry.
func (s *Store) GetSavedBook(_ context.Context, userID, bookID string) (*domain.SavedBook, error) {
	key := libraryKey(userID, bookID)

	var record savedBookRecord
	if err := s.get(key, &record); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get saved book: %w", err)
	}

	status, err := domain.StatusFromStorageLabel(record.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStatus, err)
	}

	return &domain.SavedBook{
		BookDetails: record.BookDetails,
		Status:      status,
		SavedAt:     record.SavedAt,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}
