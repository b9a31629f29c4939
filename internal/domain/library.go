package domain

import "time"

// SavedBook is a single saved-book entry in a user's library: the catalog
// descriptor captured at save time plus the user's reading status.
type SavedBook struct {
	BookDetails
	Status  ReadingStatus `json:"status"`
	SavedAt time.Time     `json:"saved_at"`
	// UpdatedAt tracks the last status change.
	UpdatedAt time.Time `json:"updated_at"`
}

// LibraryCounts holds the per-status totals for a library.
// Counts are always derived from the live entries, never stored.
type LibraryCounts struct {
	Books            int `json:"book_count"`
	WantToRead       int `json:"want_to_read_count"`
	CurrentlyReading int `json:"currently_reading_count"`
	FinishedReading  int `json:"finished_reading_count"`
	Favorite         int `json:"favorite_count"`
}

// Library is a user's full set of saved books.
type Library struct {
	Books []SavedBook `json:"books"`
}

// Counts computes the derived per-status totals from the current entries.
func (l *Library) Counts() LibraryCounts {
	c := LibraryCounts{Books: len(l.Books)}
	for i := range l.Books {
		switch l.Books[i].Status {
		case StatusWantToRead:
			c.WantToRead++
		case StatusCurrentlyReading:
			c.CurrentlyReading++
		case StatusFinishedReading:
			c.FinishedReading++
		case StatusFavorite:
			c.Favorite++
		}
	}
	return c
}

// Contains reports whether the library has an entry for the given book ID.
func (l *Library) Contains(bookID string) bool {
	for i := range l.Books {
		if l.Books[i].BookID == bookID {
			return true
		}
	}
	return false
}
