// Package repomanager vends repository implementations bound to a DBTX, so
// services can run the same repository code against *sql.DB or *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/akozlovs/bizkeeper/internal/dbx"
	"github.com/akozlovs/bizkeeper/internal/server/repositories/accounts"
	"github.com/akozlovs/bizkeeper/internal/server/repositories/featurestates"
	"github.com/akozlovs/bizkeeper/internal/server/repositories/profiles"
	"github.com/akozlovs/bizkeeper/internal/server/repositories/refreshtokens"
)

type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	FeatureStates(db dbx.DBTX) featurestates.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
