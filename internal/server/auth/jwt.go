// Package auth issues and parses the HS256 access tokens that carry the
// authenticated principal between client and server.
package auth

import (
	"errors"
	"time"

	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claims with the account id, its email and
// the account creation time. The client derives its identity snapshot from
// these fields without an extra round trip.
type Claims struct {
	jwt.RegisteredClaims
	AccountID        string `json:"account_id"`
	Email            string `json:"email"`
	AccountCreatedAt int64  `json:"account_created_at"`
}

// GenerateToken mints an access token for the account, valid for validityDuration.
func GenerateToken(accountID, email string, accountCreatedAt time.Time, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		AccountID:        accountID,
		Email:            email,
		AccountCreatedAt: accountCreatedAt.Unix(),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the token signature and expiry and returns its claims.
// An expired token yields common.ErrTokenExpired so transports can signal
// the client to refresh.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
