package models

import "time"

// Profile is one business profile owned by an account. Position preserves
// the client-side ordering of the profile list.
type Profile struct {
	ID             string
	AccountID      string
	Name           string
	Industry       string
	Description    string
	TargetAudience string
	BrandVoice     string
	Goals          string
	Website        string
	Position       int
	CreatedAt      time.Time
}
