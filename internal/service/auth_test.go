package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
)

func TestRegister(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	resp := registerTestUser(t, authSvc, "champ", "champ@example.com")

	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "champ", resp.User.Username)
	assert.Equal(t, "champ@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.False(t, resp.ExpiresAt.IsZero())

	// The returned token is immediately usable.
	claims, err := authSvc.VerifyAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "champ", claims.Username)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	registerTestUser(t, authSvc, "first", "same@example.com")

	_, err := authSvc.Register(context.Background(), RegisterRequest{
		Username: "second",
		Email:    "same@example.com",
		Password: "another fine password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	registerTestUser(t, authSvc, "champ", "one@example.com")

	_, err := authSvc.Register(context.Background(), RegisterRequest{
		Username: "champ",
		Email:    "two@example.com",
		Password: "another fine password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, RegisterRequest{
		Username: "champ",
		Email:    "not-an-email",
		Password: "long enough password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = authSvc.Register(ctx, RegisterRequest{
		Username: "champ",
		Email:    "champ@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = authSvc.Register(ctx, RegisterRequest{
		Username: "ab",
		Email:    "champ@example.com",
		Password: "long enough password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	ctx := context.Background()

	registered := registerTestUser(t, authSvc, "champ", "champ@example.com")

	resp, err := authSvc.Login(ctx, LoginRequest{
		Email:    "champ@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)

	// Login records the last login time.
	user, err := authSvc.GetUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.False(t, user.LastLoginAt.IsZero())
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	_, err := authSvc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	registerTestUser(t, authSvc, "champ", "champ@example.com")

	_, err := authSvc.Login(context.Background(), LoginRequest{
		Email:    "champ@example.com",
		Password: "incorrect horse battery staple",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestVerifyAccessToken_ClaimsOnly(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)
	ctx := context.Background()

	resp := registerTestUser(t, authSvc, "champ", "champ@example.com")
	require.NoError(t, s.DeleteUser(ctx, resp.User.ID))

	// Tokens are stateless: verification reads only the claims, so deleting
	// the account does not invalidate the token. Handlers that need the
	// stored user reject deleted accounts when they fetch it.
	claims, err := authSvc.VerifyAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = authSvc.GetUser(ctx, claims.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	s := newTestStore(t)
	authSvc := newTestAuthService(t, s)

	_, err := authSvc.VerifyAccessToken("v4.local.not-a-real-token")
	assert.Error(t, err)
}
