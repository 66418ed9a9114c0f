// Package models defines client-side domain types shared by the profile
// store, the cache, the remote client and the reconciliation engine.
package models

import "time"

// Profile is one business profile. The ProfileStore owns the authoritative
// in-memory copy; the local cache and the remote store only ever hold
// serialized copies of it.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Description    string    `json:"description"`
	TargetAudience string    `json:"target_audience"`
	BrandVoice     string    `json:"brand_voice"`
	Goals          string    `json:"goals"`
	Website        string    `json:"website,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
