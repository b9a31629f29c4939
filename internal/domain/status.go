package domain

import "fmt"

// ReadingStatus is the canonical reading-status vocabulary used by the API
// and everywhere inside the application.
//
// Saved book records persist a different, display-oriented vocabulary
// ("Want to Read", ...). The two map 1:1 and the translation happens
// exclusively at the store boundary; no other layer may see a storage label.
type ReadingStatus string

const (
	StatusWantToRead       ReadingStatus = "WANT_TO_READ"
	StatusCurrentlyReading ReadingStatus = "CURRENTLY_READING"
	StatusFinishedReading  ReadingStatus = "FINISHED_READING"
	StatusFavorite         ReadingStatus = "FAVORITE"
)

// Storage labels for persisted saved-book records.
const (
	storageWantToRead       = "Want to Read"
	storageCurrentlyReading = "Currently Reading"
	storageFinishedReading  = "Finished Reading"
	storageFavorite         = "Favorite"
)

// AllStatuses lists every valid reading status.
var AllStatuses = []ReadingStatus{
	StatusWantToRead,
	StatusCurrentlyReading,
	StatusFinishedReading,
	StatusFavorite,
}

// Valid reports whether s is one of the four known statuses.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusFinishedReading, StatusFavorite:
		return true
	}
	return false
}

// StorageLabel converts a canonical status to its persisted label.
// Returns an error for values outside the vocabulary; callers must treat
// that as data corruption, not user error.
func (s ReadingStatus) StorageLabel() (string, error) {
	switch s {
	case StatusWantToRead:
		return storageWantToRead, nil
	case StatusCurrentlyReading:
		return storageCurrentlyReading, nil
	case StatusFinishedReading:
		return storageFinishedReading, nil
	case StatusFavorite:
		return storageFavorite, nil
	}
	return "", fmt.Errorf("unknown reading status %q", string(s))
}

// StatusFromStorageLabel converts a persisted label back to the canonical
// status. Returns an error for labels outside the vocabulary.
func StatusFromStorageLabel(label string) (ReadingStatus, error) {
	switch label {
	case storageWantToRead:
		return StatusWantToRead, nil
	case storageCurrentlyReading:
		return StatusCurrentlyReading, nil
	case storageFinishedReading:
		return StatusFinishedReading, nil
	case storageFavorite:
		return StatusFavorite, nil
	}
	return "", fmt.Errorf("unknown stored reading status %q", label)
}
