package reconcile

import (
	"context"
	"errors"
	"strconv"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

// Switch classifies how the incoming principal relates to the one the
// device remembers.
type Switch int

const (
	SwitchNone Switch = iota // first sign-in on this device
	SwitchSame
	SwitchDifferent
)

func classifySwitch(prev models.SessionRecord, hasPrev bool, principalID string) Switch {
	if !hasPrev || prev.PrincipalID == "" {
		return SwitchNone
	}
	if prev.PrincipalID == principalID {
		return SwitchSame
	}
	return SwitchDifferent
}

func loadSession(ctx context.Context, c cache.Cache) (models.SessionRecord, bool) {
	id, err := c.Get(ctx, cache.KeySessionPrincipalID)
	if err != nil {
		return models.SessionRecord{}, false
	}

	rec := models.SessionRecord{PrincipalID: id}
	rec.Email, _ = c.Get(ctx, cache.KeySessionEmail)
	if v, err := c.Get(ctx, cache.KeySessionIsNewUser); err == nil {
		rec.IsNewUser, _ = strconv.ParseBool(v)
	}
	if v, err := c.Get(ctx, cache.KeySessionOnboarded); err == nil {
		rec.OnboardingComplete, _ = strconv.ParseBool(v)
	}
	return rec, true
}

func saveSession(ctx context.Context, c cache.Cache, rec models.SessionRecord) error {
	if err := c.Set(ctx, cache.KeySessionPrincipalID, rec.PrincipalID); err != nil {
		return err
	}
	if err := c.Set(ctx, cache.KeySessionEmail, rec.Email); err != nil {
		return err
	}
	if err := c.Set(ctx, cache.KeySessionIsNewUser, strconv.FormatBool(rec.IsNewUser)); err != nil {
		return err
	}
	return c.Set(ctx, cache.KeySessionOnboarded, strconv.FormatBool(rec.OnboardingComplete))
}

// loadCachedProfiles reads the persisted profile list and remembered active
// id. A corrupt entry is treated as absent and removed.
func loadCachedProfiles(ctx context.Context, c cache.Cache, logger logging.Logger) ([]models.Profile, string) {
	list, activeID, err := cache.LoadProfiles(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ""
		}
		logger.Warn(ctx, "discarding corrupt cached profiles", "error", err)
		_ = c.Remove(ctx, cache.KeyProfiles)
		return nil, ""
	}
	return list, activeID
}
