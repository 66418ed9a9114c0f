package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/dbx"
	"github.com/akozlovs/bizkeeper/internal/server/models"
	"github.com/akozlovs/bizkeeper/internal/server/repositories/repomanager"
)

// ProfileService implements the document-service side of profile and
// feature-state storage. All operations are scoped to the authenticated
// account; cross-account access is impossible by construction.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// GetProfiles returns the account's profiles in stored order.
func (s *ProfileService) GetProfiles(ctx context.Context, accountID string) ([]*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)
	result, err := repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %v", err)
	}
	return result, nil
}

// PutProfile upserts a single profile. New profiles are appended at the end
// of the list.
func (s *ProfileService) PutProfile(ctx context.Context, accountID string, profile *models.Profile) error {
	profile.AccountID = accountID

	repo := s.repomanager.Profiles(s.db)
	existing, err := repo.ListByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("error listing profiles: %v", err)
	}

	profile.Position = len(existing)
	for _, p := range existing {
		if p.ID == profile.ID {
			profile.Position = p.Position
			break
		}
	}

	if err := repo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("error saving profile: %v", err)
	}
	return nil
}

// PutProfiles replaces the account's whole profile set, preserving the order
// of the incoming slice. Runs in a single transaction so readers never
// observe a partially replaced set.
func (s *ProfileService) PutProfiles(ctx context.Context, accountID string, profiles []*models.Profile) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Profiles(tx).ReplaceAll(ctx, accountID, profiles)
	})
}

// GetFeatureState returns the stored document or common.ErrorNotFound.
func (s *ProfileService) GetFeatureState(ctx context.Context, accountID, profileID, domain string) ([]byte, error) {
	repo := s.repomanager.FeatureStates(s.db)
	state, err := repo.Get(ctx, accountID, profileID, domain)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading feature state: %v", err)
	}
	return state.Document, nil
}

// PutFeatureState overwrites the document wholesale.
func (s *ProfileService) PutFeatureState(ctx context.Context, accountID, profileID, domain string, document []byte) error {
	repo := s.repomanager.FeatureStates(s.db)
	state := &models.FeatureState{AccountID: accountID, ProfileID: profileID, Domain: domain, Document: document}
	if err := repo.Put(ctx, state); err != nil {
		return fmt.Errorf("error saving feature state: %v", err)
	}
	return nil
}

// HasCompletedOnboarding reports the account's onboarding flag.
func (s *ProfileService) HasCompletedOnboarding(ctx context.Context, accountID string) (bool, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("error loading account: %v", err)
	}
	return account.OnboardingComplete, nil
}

// MarkOnboardingComplete sets the account's onboarding flag. Idempotent.
func (s *ProfileService) MarkOnboardingComplete(ctx context.Context, accountID string) error {
	if err := s.repomanager.Accounts(s.db).MarkOnboardingComplete(ctx, accountID); err != nil {
		return fmt.Errorf("error updating account: %v", err)
	}
	return nil
}
