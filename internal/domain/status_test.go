package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingStatus_StorageLabel(t *testing.T) {
	tests := []struct {
		status ReadingStatus
		label  string
	}{
		{StatusWantToRead, "Want to Read"},
		{StatusCurrentlyReading, "Currently Reading"},
		{StatusFinishedReading, "Finished Reading"},
		{StatusFavorite, "Favorite"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			label, err := tt.status.StorageLabel()
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestReadingStatus_RoundTrip(t *testing.T) {
	for _, status := range AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			label, err := status.StorageLabel()
			require.NoError(t, err)

			back, err := StatusFromStorageLabel(label)
			require.NoError(t, err)
			assert.Equal(t, status, back)
		})
	}
}

func TestReadingStatus_UnknownValuesFailLoudly(t *testing.T) {
	_, err := ReadingStatus("READING_SOMEDAY").StorageLabel()
	assert.Error(t, err)

	_, err = ReadingStatus("").StorageLabel()
	assert.Error(t, err)

	// The canonical spelling is not a valid storage label and vice versa.
	_, err = StatusFromStorageLabel("WANT_TO_READ")
	assert.Error(t, err)

	_, err = StatusFromStorageLabel("want to read")
	assert.Error(t, err)
}

func TestReadingStatus_Valid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.Valid(), "status %s should be valid", status)
	}
	assert.False(t, ReadingStatus("Favorite").Valid(), "storage labels are not canonical statuses")
	assert.False(t, ReadingStatus("").Valid())
}
