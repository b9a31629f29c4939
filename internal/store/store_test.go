package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikelind28/chapter-champ/internal/domain"
	"github.com/mikelind28/chapter-champ/internal/id"
)

// newTestStore opens a real badger store in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func newTestUser(t *testing.T, username, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           id.MustGenerate("user"),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
	}
	user.InitTimestamps()
	return user
}

func createTestUser(t *testing.T, s *Store, username, email string) *domain.User {
	t.Helper()

	user := newTestUser(t, username, email)
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}
