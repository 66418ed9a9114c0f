package profiles

import (
	"context"
	"fmt"

	"github.com/akozlovs/bizkeeper/internal/dbx"
	"github.com/akozlovs/bizkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]*models.Profile, error) {
	query :=
		`SELECT id, account_id, name, industry, description, target_audience, brand_voice, goals, website, position, created_at
		 FROM profiles
		 WHERE account_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Industry, &p.Description,
			&p.TargetAudience, &p.BrandVoice, &p.Goals, &p.Website, &p.Position, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query :=
		`INSERT INTO profiles (id, account_id, name, industry, description, target_audience, brand_voice, goals, website, position, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			industry = excluded.industry,
			description = excluded.description,
			target_audience = excluded.target_audience,
			brand_voice = excluded.brand_voice,
			goals = excluded.goals,
			website = excluded.website,
			position = excluded.position
		 `

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.AccountID, profile.Name, profile.Industry, profile.Description,
		profile.TargetAudience, profile.BrandVoice, profile.Goals, profile.Website,
		profile.Position, profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ReplaceAll swaps the account's whole profile set for the given one. The
// caller is expected to run it inside a transaction via dbx.WithTx.
func (r *PostgresRepository) ReplaceAll(ctx context.Context, accountID string, profiles []*models.Profile) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}
	for i, p := range profiles {
		p.AccountID = accountID
		p.Position = i
		if err := r.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
