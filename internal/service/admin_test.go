package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikelind28/chapter-champ/internal/domain"
	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
)

func TestAdmin_ListUsers(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	adminSvc := NewAdminService(s, nil)
	ctx := context.Background()

	registerTestUser(t, authSvc, "alpha", "alpha@example.com")
	registerTestUser(t, authSvc, "beta", "beta@example.com")

	users, err := adminSvc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdmin_PromoteUser(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	adminSvc := NewAdminService(s, nil)
	ctx := context.Background()

	user := registerTestUser(t, authSvc, "champ", "champ@example.com").User
	assert.False(t, user.IsAdmin)

	promoted, err := adminSvc.PromoteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	// Promoting again still succeeds.
	promoted, err = adminSvc.PromoteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	_, err = adminSvc.PromoteUser(ctx, "user-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdmin_DeleteUser(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	adminSvc := NewAdminService(s, nil)
	libSvc := newTestLibraryService(t, s)
	ctx := context.Background()

	admin := registerTestUser(t, authSvc, "admin", "admin@example.com").User
	user := registerTestUser(t, authSvc, "champ", "champ@example.com").User

	_, err := libSvc.SaveBook(ctx, user.ID, saveRequest("b1", "Dune", domain.StatusWantToRead))
	require.NoError(t, err)

	require.NoError(t, adminSvc.DeleteUser(ctx, admin.ID, user.ID))

	_, err = authSvc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Deleting again fails, deleting yourself is refused.
	assert.ErrorIs(t, adminSvc.DeleteUser(ctx, admin.ID, user.ID), domainerrors.ErrNotFound)
	assert.ErrorIs(t, adminSvc.DeleteUser(ctx, admin.ID, admin.ID), domainerrors.ErrValidation)
}
