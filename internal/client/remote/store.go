// Package remote talks to the BizKeeper server. All calls are scoped to the
// signed-in account by the access token the client attaches to every RPC.
package remote

import (
	"context"
	"encoding/json"

	"github.com/akozlovs/bizkeeper/internal/client/models"
)

// Store is the authoritative profile and feature state backend.
// GetFeatureState returns common.ErrorNotFound when no document exists for
// the pair. Transport failures surface as ErrUnavailable, rejected
// credentials as ErrUnauthorized.
type Store interface {
	GetProfiles(ctx context.Context) ([]models.Profile, error)
	PutProfile(ctx context.Context, p models.Profile) error
	PutProfiles(ctx context.Context, list []models.Profile) error
	GetFeatureState(ctx context.Context, profileID string, domain models.Domain) (json.RawMessage, error)
	PutFeatureState(ctx context.Context, profileID string, domain models.Domain, doc json.RawMessage) error
	HasCompletedOnboarding(ctx context.Context) (bool, error)
	MarkOnboardingComplete(ctx context.Context) error
}
