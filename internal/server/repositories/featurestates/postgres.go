package featurestates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/dbx"
	"github.com/akozlovs/bizkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, accountID, profileID, domain string) (*models.FeatureState, error) {
	query :=
		`SELECT account_id, profile_id, domain, document, updated_at FROM feature_states
		 WHERE account_id = $1 AND profile_id = $2 AND domain = $3
		 `

	state := &models.FeatureState{}
	err := r.db.QueryRowContext(ctx, query, accountID, profileID, domain).Scan(
		&state.AccountID, &state.ProfileID, &state.Domain, &state.Document, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return state, nil
}

func (r *PostgresRepository) Put(ctx context.Context, state *models.FeatureState) error {
	query :=
		`INSERT INTO feature_states (account_id, profile_id, domain, document, updated_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (account_id, profile_id, domain) DO UPDATE SET
			document = excluded.document,
			updated_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query, state.AccountID, state.ProfileID, state.Domain, state.Document)
	if err != nil {
		return fmt.Errorf("failed to upsert feature state: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByProfile(ctx context.Context, accountID, profileID string) error {
	query := `DELETE FROM feature_states WHERE account_id = $1 AND profile_id = $2`
	if _, err := r.db.ExecContext(ctx, query, accountID, profileID); err != nil {
		return fmt.Errorf("failed to delete feature states: %w", err)
	}
	return nil
}
