// Package services implements the client-side use cases the CLI drives:
// onboarding, profile management and switching.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/featuresync"
	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/profiles"
	"github.com/akozlovs/bizkeeper/internal/client/remote"
	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

// ProfileInput carries the user-entered profile fields.
type ProfileInput struct {
	Name           string
	Industry       string
	Description    string
	TargetAudience string
	BrandVoice     string
	Goals          string
	Website        string
}

// ProfileService mutates the profile store and keeps the local cache and
// the remote store in step. Remote failures are logged and retried by the
// periodic resync, never surfaced to the caller.
type ProfileService struct {
	store  *profiles.Store
	cache  cache.Cache
	remote remote.Store
	sync   *featuresync.Sync
	logger logging.Logger
	now    func() time.Time
}

func NewProfileService(store *profiles.Store, c cache.Cache, r remote.Store, s *featuresync.Sync, logger logging.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		cache:  c,
		remote: r,
		sync:   s,
		logger: logger,
		now:    time.Now,
	}
}

// List returns the current store snapshot.
func (s *ProfileService) List() profiles.Snapshot {
	return s.store.Load()
}

// Onboard creates a profile from the input, makes it part of the store,
// persists it everywhere and marks onboarding complete remotely. The first
// profile created becomes active and the feature sync moves to it.
func (s *ProfileService) Onboard(ctx context.Context, in ProfileInput) (models.Profile, error) {
	p := models.Profile{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Industry:       in.Industry,
		Description:    in.Description,
		TargetAudience: in.TargetAudience,
		BrandVoice:     in.BrandVoice,
		Goals:          in.Goals,
		Website:        in.Website,
		CreatedAt:      s.now(),
	}

	s.store.Upsert(p)
	s.persist(ctx)

	if err := s.remote.PutProfile(ctx, p); err != nil {
		s.logger.Warn(ctx, "cannot persist new profile remotely", "profile", p.ID, "error", err)
	}
	if err := s.remote.MarkOnboardingComplete(ctx); err != nil {
		s.logger.Warn(ctx, "cannot mark onboarding complete", "error", err)
	}

	s.followActive(ctx)
	return p, nil
}

// Update applies the input to an existing profile, preserving its id,
// position and creation time.
func (s *ProfileService) Update(ctx context.Context, id string, in ProfileInput) (models.Profile, error) {
	snap := s.store.Load()
	var current models.Profile
	found := false
	for _, p := range snap.Profiles {
		if p.ID == id {
			current = p
			found = true
			break
		}
	}
	if !found {
		return models.Profile{}, common.ErrorNotFound
	}

	current.Name = in.Name
	current.Industry = in.Industry
	current.Description = in.Description
	current.TargetAudience = in.TargetAudience
	current.BrandVoice = in.BrandVoice
	current.Goals = in.Goals
	current.Website = in.Website

	s.store.Upsert(current)
	s.persist(ctx)

	if err := s.remote.PutProfile(ctx, current); err != nil {
		s.logger.Warn(ctx, "cannot persist profile update remotely", "profile", id, "error", err)
	}
	return current, nil
}

// Switch makes the given profile active and runs the feature sync switch
// protocol. Unknown ids return common.ErrorNotFound.
func (s *ProfileService) Switch(ctx context.Context, id string) error {
	if !s.store.SetActive(id) {
		return common.ErrorNotFound
	}
	s.persist(ctx)
	s.followActive(ctx)
	return nil
}

// Delete removes the profile and its local feature documents, then pushes
// the shrunken list so the removal sticks remotely.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	snap := s.store.Load()
	found := false
	for _, p := range snap.Profiles {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return common.ErrorNotFound
	}

	s.store.Remove(id)
	for _, d := range models.Domains() {
		_ = s.cache.Remove(ctx, cache.FeatureStateKey(id, string(d)))
	}
	s.persist(ctx)

	if err := s.remote.PutProfiles(ctx, s.store.Load().Profiles); err != nil {
		s.logger.Warn(ctx, "cannot persist profile removal remotely", "profile", id, "error", err)
	}

	s.followActive(ctx)
	return nil
}

func (s *ProfileService) persist(ctx context.Context) {
	snap := s.store.Load()
	if err := cache.SaveProfiles(ctx, s.cache, snap.Profiles, snap.ActiveID); err != nil {
		s.logger.Warn(ctx, "cannot cache profiles", "error", err)
	}
}

// followActive re-points the feature sync at the store's active profile if
// it moved.
func (s *ProfileService) followActive(ctx context.Context) {
	active := s.store.ActiveID()
	if s.sync.ActiveProfile() != active {
		s.sync.SwitchProfile(ctx, active)
	}
}
