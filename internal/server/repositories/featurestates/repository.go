// Package featurestates stores opaque feature documents keyed by
// (account, profile, domain).
package featurestates

import (
	"context"

	"github.com/akozlovs/bizkeeper/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, accountID, profileID, domain string) (*models.FeatureState, error)
	Put(ctx context.Context, state *models.FeatureState) error
	DeleteByProfile(ctx context.Context, accountID, profileID string) error
}
