package models

import "time"

// FeatureState is an opaque JSON document for one (account, profile, domain)
// triple. The server never inspects the document.
type FeatureState struct {
	AccountID string
	ProfileID string
	Domain    string
	Document  []byte
	UpdatedAt time.Time
}
