package models

import "time"

// IdentitySnapshot is the client's current view of who is signed in.
// A zero snapshot means nobody is.
type IdentitySnapshot struct {
	PrincipalID     string
	Email           string
	CreatedAt       time.Time
	IsAuthenticated bool
}
