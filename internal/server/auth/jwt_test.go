package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateToken("acc-1", "owner@example.com", created, secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, created.Unix(), claims.AccountCreatedAt)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("acc-1", "owner@example.com", time.Now(), secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("acc-1", "owner@example.com", time.Now(), []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("secret"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}
