// Package reconcile decides, on every authentication transition, which
// profile set is authoritative between the local cache and the remote
// store, and where the user lands.
package reconcile

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/profiles"
	"github.com/akozlovs/bizkeeper/internal/client/remote"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

// Route is the reconciliation outcome the host navigates to.
type Route string

const (
	RouteNone       Route = ""
	RouteDashboard  Route = "dashboard"
	RouteOnboarding Route = "onboarding"
)

// State is the reconciler's position in its run. It is Idle between runs;
// the intermediate states are observable while a run is in flight.
type State string

const (
	StateIdle       State = "idle"
	StateChecking   State = "checking"
	StateHydrating  State = "hydrating"
	StateRecovering State = "recovering"
	StateOnboarding State = "onboarding"
)

// Config bounds the gating remote fetch and tunes the recovery heuristic.
// The age threshold approximates "this account existed before this session"
// when the remote onboarding flag is unreadable; it compensates for identity
// providers reporting a fresh createdAt shortly after registration.
type Config struct {
	RemoteTimeout        time.Duration
	RecoveryAgeThreshold time.Duration
}

const (
	DefaultRemoteTimeout        = 5 * time.Second
	DefaultRecoveryAgeThreshold = 2 * time.Minute
)

// Reconciler consumes identity snapshots and produces the authoritative
// ProfileStore contents plus a route. Runs are serialized and deduplicated
// by the Guard.
type Reconciler struct {
	cfg    Config
	store  *profiles.Store
	cache  cache.Cache
	remote remote.Store
	guard  *Guard
	logger logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	state     State
	notice    *models.ConflictNotice
	lastRoute Route
}

func New(cfg Config, store *profiles.Store, c cache.Cache, r remote.Store, guard *Guard, logger logging.Logger) *Reconciler {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = DefaultRemoteTimeout
	}
	if cfg.RecoveryAgeThreshold <= 0 {
		cfg.RecoveryAgeThreshold = DefaultRecoveryAgeThreshold
	}
	return &Reconciler{
		cfg:    cfg,
		store:  store,
		cache:  c,
		remote: r,
		guard:  guard,
		logger: logger,
		now:    time.Now,
		state:  StateIdle,
	}
}

// State returns the reconciler's current state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Notice returns the pending conflict notice, if any.
func (r *Reconciler) Notice() *models.ConflictNotice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notice == nil {
		return nil
	}
	n := *r.notice
	return &n
}

// AcknowledgeNotice clears the pending conflict notice.
func (r *Reconciler) AcknowledgeNotice() {
	r.mu.Lock()
	r.notice = nil
	r.mu.Unlock()
}

// Reconcile processes one identity snapshot. An unauthenticated snapshot
// resets the guard so the next sign-in reprocesses; a snapshot for an
// already-handled principal returns the previous route without side effects.
// Remote failures never surface: they degrade to the local fallback rules.
func (r *Reconciler) Reconcile(ctx context.Context, snap models.IdentitySnapshot) (Route, error) {
	if !snap.IsAuthenticated {
		r.guard.Reset()
		r.setState(StateIdle)
		return RouteNone, nil
	}

	if !r.guard.Begin(snap.PrincipalID) {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.lastRoute, nil
	}

	// a run that dies before Complete releases the slot so the next
	// trigger reprocesses the principal
	completed := false
	defer func() {
		if !completed {
			r.guard.Abort()
			r.setState(StateIdle)
		}
	}()

	r.setState(StateChecking)

	prev, hasPrev := loadSession(ctx, r.cache)
	sw := classifySwitch(prev, hasPrev, snap.PrincipalID)
	if sw == SwitchDifferent {
		r.mu.Lock()
		r.notice = &models.ConflictNotice{PreviousEmail: prev.Email}
		r.mu.Unlock()
	}

	localProfiles, rememberedActive := loadCachedProfiles(ctx, r.cache, r.logger)

	// The single gating network call.
	fetchCtx, cancel := context.WithTimeout(ctx, r.cfg.RemoteTimeout)
	remoteProfiles, fetchErr := r.remote.GetProfiles(fetchCtx)
	cancel()
	if fetchErr != nil {
		r.logger.Warn(ctx, "remote profile fetch failed, falling back to local rules", "error", fetchErr)
	}

	var route Route
	switch {
	case fetchErr == nil && len(remoteProfiles) > 0:
		route = r.adoptRemote(ctx, remoteProfiles, rememberedActive, localProfiles, sw)

	case sw == SwitchSame && len(localProfiles) > 0:
		// Remote empty or unreachable; same principal keeps its local data.
		route = r.adoptLocal(ctx, localProfiles, rememberedActive)

	case fetchErr == nil && r.looksLikeExistingAccount(ctx, snap):
		route = r.recover(ctx, snap, localProfiles, sw)

	default:
		route = r.onboard(ctx, localProfiles, sw)
	}

	if err := saveSession(ctx, r.cache, models.SessionRecord{
		PrincipalID:        snap.PrincipalID,
		Email:              snap.Email,
		IsNewUser:          route == RouteOnboarding,
		OnboardingComplete: route == RouteDashboard,
	}); err != nil {
		r.logger.Warn(ctx, "cannot persist session record", "error", err)
	}

	r.guard.Complete(snap.PrincipalID)
	completed = true

	r.mu.Lock()
	r.lastRoute = route
	r.state = StateIdle
	r.mu.Unlock()

	return route, nil
}

// adoptRemote replaces the store with the remote set. The remembered active
// id is honored for the same principal; a foreign principal's local traces
// are purged first and its selection discarded.
func (r *Reconciler) adoptRemote(ctx context.Context, remoteProfiles []models.Profile, rememberedActive string, localProfiles []models.Profile, sw Switch) Route {
	r.setState(StateHydrating)

	active := rememberedActive
	if sw == SwitchDifferent {
		cache.PurgeProfiles(ctx, r.cache, localProfiles)
		active = ""
	}

	r.store.Replace(remoteProfiles, active)

	snap := r.store.Load()
	if err := cache.SaveProfiles(ctx, r.cache, snap.Profiles, snap.ActiveID); err != nil {
		r.logger.Warn(ctx, "cannot cache hydrated profiles", "error", err)
	}
	return RouteDashboard
}

// adoptLocal promotes cached profiles and writes them through to the remote
// store on a best-effort basis.
func (r *Reconciler) adoptLocal(ctx context.Context, localProfiles []models.Profile, rememberedActive string) Route {
	r.setState(StateHydrating)

	r.store.Replace(localProfiles, rememberedActive)

	if err := r.remote.PutProfiles(ctx, localProfiles); err != nil {
		r.logger.Warn(ctx, "write-through of local profiles failed", "error", err)
	}
	return RouteDashboard
}

// recover synthesizes a minimal profile for a principal that evidently used
// the product before but has no discoverable profile data anywhere. A
// foreign principal's stale local data is purged first.
func (r *Reconciler) recover(ctx context.Context, snap models.IdentitySnapshot, localProfiles []models.Profile, sw Switch) Route {
	r.setState(StateRecovering)

	if sw == SwitchDifferent {
		cache.PurgeProfiles(ctx, r.cache, localProfiles)
	}

	p := models.Profile{
		ID:        uuid.NewString(),
		Name:      recoveryProfileName(snap),
		CreatedAt: r.now(),
	}

	r.store.Replace([]models.Profile{p}, p.ID)

	if err := cache.SaveProfiles(ctx, r.cache, []models.Profile{p}, p.ID); err != nil {
		r.logger.Warn(ctx, "cannot cache recovery profile", "error", err)
	}
	if err := r.remote.PutProfile(ctx, p); err != nil {
		r.logger.Warn(ctx, "cannot persist recovery profile remotely", "error", err)
	}
	if err := r.remote.MarkOnboardingComplete(ctx); err != nil {
		r.logger.Warn(ctx, "cannot mark onboarding complete", "error", err)
	}
	return RouteDashboard
}

// onboard leaves the store empty. A foreign principal's stale local data is
// purged so nothing leaks across accounts.
func (r *Reconciler) onboard(ctx context.Context, localProfiles []models.Profile, sw Switch) Route {
	r.setState(StateOnboarding)

	if sw == SwitchDifferent {
		cache.PurgeProfiles(ctx, r.cache, localProfiles)
	}
	r.store.Clear()
	return RouteOnboarding
}

// looksLikeExistingAccount reports whether the principal evidently predates
// this session: either the account is older than the configured threshold,
// or the remote onboarding flag is set.
func (r *Reconciler) looksLikeExistingAccount(ctx context.Context, snap models.IdentitySnapshot) bool {
	if !snap.CreatedAt.IsZero() && r.now().Sub(snap.CreatedAt) > r.cfg.RecoveryAgeThreshold {
		return true
	}

	done, err := r.remote.HasCompletedOnboarding(ctx)
	if err != nil {
		r.logger.Warn(ctx, "cannot read onboarding status", "error", err)
		return false
	}
	return done
}

func recoveryProfileName(snap models.IdentitySnapshot) string {
	if at := strings.Index(snap.Email, "@"); at > 0 {
		return snap.Email[:at]
	}
	if snap.Email != "" {
		return snap.Email
	}
	return "My Business"
}

func (r *Reconciler) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
