package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)

	token, err := svc.GenerateRefreshToken("user-2", "b@x.com")
	require.NoError(t, err)

	claims, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
	assert.Equal(t, "b@x.com", claims.Email)
}

func TestTokensDoNotCrossValidate(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)

	access, err := svc.GenerateAccessToken("user-1", "a@x.com")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken("user-1", "a@x.com")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredTokenFailsEveryTime(t *testing.T) {
	svc := New("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@x.com")
	require.NoError(t, err)

	// Retrying never helps: expiry is checked on every parse.
	for i := 0; i < 3; i++ {
		_, err = svc.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	other := New("other-secret", "refresh-secret", time.Hour, 7*24*time.Hour)

	token, err := other.GenerateAccessToken("user-1", "a@x.com")
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
