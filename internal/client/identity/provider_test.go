package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlovs/bizkeeper/internal/client/models"
)

func mintToken(t *testing.T, accountID, email string, createdAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		AccountID:        accountID,
		Email:            email,
		AccountCreatedAt: createdAt.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestAdoptTokenPublishesSnapshot(t *testing.T) {
	p := &GRPCProvider{}

	var seen []models.IdentitySnapshot
	p.OnChange(func(s models.IdentitySnapshot) { seen = append(seen, s) })

	createdAt := time.Unix(1700000000, 0)
	require.NoError(t, p.adoptToken(mintToken(t, "acc-1", "user@example.com", createdAt)))

	snap := p.Current()
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "acc-1", snap.PrincipalID)
	assert.Equal(t, "user@example.com", snap.Email)
	assert.Equal(t, createdAt, snap.CreatedAt)
	require.Len(t, seen, 1)
	assert.Equal(t, snap, seen[0])
}

func TestAdoptTokenRejectsGarbage(t *testing.T) {
	p := &GRPCProvider{}
	assert.Error(t, p.adoptToken("not-a-token"))
	assert.False(t, p.Current().IsAuthenticated)
}

func TestSignOutClearsSnapshot(t *testing.T) {
	p := &GRPCProvider{}
	require.NoError(t, p.adoptToken(mintToken(t, "acc-1", "user@example.com", time.Now())))

	var last models.IdentitySnapshot
	p.OnChange(func(s models.IdentitySnapshot) { last = s })

	require.NoError(t, p.SignOut(context.Background()))
	assert.False(t, p.Current().IsAuthenticated)
	assert.False(t, last.IsAuthenticated)
	assert.Empty(t, last.PrincipalID)
}
