package cache

import "fmt"

// Well-known cache keys. Feature state documents get one key per
// profile/domain pair via FeatureStateKey.
const (
	KeyProfiles      = "profiles"
	KeyActiveProfile = "active_profile"

	KeySessionPrincipalID = "session_user_id"
	KeySessionEmail       = "session_email"
	KeySessionIsNewUser   = "session_is_new_user"
	KeySessionOnboarded   = "session_onboarding_complete"
)

// FeatureStateKey returns the cache key holding the feature document for the
// given profile and domain.
func FeatureStateKey(profileID, domain string) string {
	return fmt.Sprintf("profile_state_%s_%s", profileID, domain)
}
