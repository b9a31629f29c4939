package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikelind28/chapter-champ/internal/domain"
)

const testKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-test123",
		Username: "champ",
		Email:    "champ@example.com",
		IsAdmin:  true,
	}
}

func TestNewTokenService_KeyValidation(t *testing.T) {
	tests := []struct {
		name    string
		keyHex  string
		wantErr bool
	}{
		{"valid key", testKeyHex, false},
		{"too short", "abcdef", true},
		{"too long", testKeyHex + "00", true},
		{"not hex", strings.Repeat("z", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.keyHex, 2*time.Hour)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, 2*time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-test123", claims.UserID)
	assert.Equal(t, "champ", claims.Username)
	assert.Equal(t, "champ@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "user-test123", claims.Subject)
	assert.True(t, strings.HasPrefix(claims.TokenID, "token-"))
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.Expiration, time.Minute)
}

func TestTokenService_VerifyRejectsExpired(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, -time.Minute)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyRejectsWrongKey(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, 2*time.Hour)
	require.NoError(t, err)

	otherKey := "fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"
	other, err := NewTokenService(otherKey, 2*time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, 2*time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken("not-a-token")
	assert.Error(t, err)

	_, err = svc.VerifyAccessToken("")
	assert.Error(t, err)
}
