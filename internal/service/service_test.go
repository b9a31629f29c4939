package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mikelind28/chapter-champ/internal/auth"
	"github.com/mikelind28/chapter-champ/internal/store"
)

const testKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()

	ts, err := auth.NewTokenService(testKeyHex, 2*time.Hour)
	require.NoError(t, err)
	return ts
}

func newTestAuthService(t *testing.T, s *store.Store) *AuthService {
	t.Helper()
	return NewAuthService(s, newTestTokenService(t), nil)
}

func registerTestUser(t *testing.T, authSvc *AuthService, username, email string) *AuthResponse {
	t.Helper()

	resp, err := authSvc.Register(context.Background(), RegisterRequest{
		Username: username,
		Email:    email,
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	return resp
}
