// Package models defines server-side persistence models.
package models

import "time"

// Account is a registered principal. Email doubles as the login name.
type Account struct {
	ID                 string
	Email              string
	PasswordHash       []byte
	OnboardingComplete bool
	CreatedAt          time.Time
}
