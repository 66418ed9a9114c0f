package cache

import (
	"context"
	"encoding/json"

	"github.com/akozlovs/bizkeeper/internal/client/models"
)

// SaveProfiles persists the profile list and the active selection.
func SaveProfiles(ctx context.Context, c Cache, list []models.Profile, activeID string) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if err := c.Set(ctx, KeyProfiles, string(raw)); err != nil {
		return err
	}
	return c.Set(ctx, KeyActiveProfile, activeID)
}

// LoadProfiles reads the persisted profile list and the remembered active
// id. It returns common.ErrorNotFound when nothing is cached and the
// unmarshalling error when the entry is corrupt; callers decide how to
// degrade.
func LoadProfiles(ctx context.Context, c Cache) ([]models.Profile, string, error) {
	raw, err := c.Get(ctx, KeyProfiles)
	if err != nil {
		return nil, "", err
	}

	var list []models.Profile
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, "", err
	}

	activeID, _ := c.Get(ctx, KeyActiveProfile)
	return list, activeID, nil
}

// PurgeProfiles removes the cached profile list, the active pointer and
// every feature document belonging to the given profiles.
func PurgeProfiles(ctx context.Context, c Cache, list []models.Profile) {
	_ = c.Remove(ctx, KeyProfiles)
	_ = c.Remove(ctx, KeyActiveProfile)
	for _, p := range list {
		for _, d := range models.Domains() {
			_ = c.Remove(ctx, FeatureStateKey(p.ID, string(d)))
		}
	}
}
