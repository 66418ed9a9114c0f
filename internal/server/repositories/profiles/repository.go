// Package profiles stores business profiles per account, preserving the
// client-side list order via the position column.
package profiles

import (
	"context"

	"github.com/akozlovs/bizkeeper/internal/server/models"
)

type Repository interface {
	ListByAccount(ctx context.Context, accountID string) ([]*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	ReplaceAll(ctx context.Context, accountID string, profiles []*models.Profile) error
}
