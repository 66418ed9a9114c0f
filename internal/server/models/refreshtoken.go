package models

import "time"

// RefreshToken is a server-stored, single-use refresh token.
type RefreshToken struct {
	Token     string
	AccountID string
	Expires   time.Time
}
