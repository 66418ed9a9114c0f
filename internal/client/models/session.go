package models

// SessionRecord is the durable trace of the last reconciled sign-in, kept in
// the local cache so the next sign-in can be classified as a same-account or
// a different-account switch.
type SessionRecord struct {
	PrincipalID        string `json:"principal_id"`
	Email              string `json:"email"`
	IsNewUser          bool   `json:"is_new_user"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// ConflictNotice is raised when a different account signs in on a device that
// still holds another account's local data.
type ConflictNotice struct {
	PreviousEmail string
}
