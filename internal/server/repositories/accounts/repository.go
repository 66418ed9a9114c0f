// Package accounts stores registered principals.
package accounts

import (
	"context"

	"github.com/akozlovs/bizkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	MarkOnboardingComplete(ctx context.Context, id string) error
}
