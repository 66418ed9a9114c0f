package reconcile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/profiles"
	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

/*************
 * Fakes
 *************/

type memCache struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemCache() *memCache {
	return &memCache{m: map[string]string{}}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
	return nil
}

func (c *memCache) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}

func (c *memCache) Close() error { return nil }

type fakeRemote struct {
	profiles    []models.Profile
	getErr      error
	getPanic    bool
	onboarded   bool
	onboardErr  error
	putErr      error
	putsAll     [][]models.Profile
	putsSingle  []models.Profile
	getCount    int
	markedCount int
}

func (f *fakeRemote) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	f.getCount++
	if f.getPanic {
		panic("remote blew up")
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profiles, nil
}

func (f *fakeRemote) PutProfile(ctx context.Context, p models.Profile) error {
	f.putsSingle = append(f.putsSingle, p)
	return f.putErr
}

func (f *fakeRemote) PutProfiles(ctx context.Context, list []models.Profile) error {
	f.putsAll = append(f.putsAll, list)
	return f.putErr
}

func (f *fakeRemote) GetFeatureState(ctx context.Context, profileID string, domain models.Domain) (json.RawMessage, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeRemote) PutFeatureState(ctx context.Context, profileID string, domain models.Domain, doc json.RawMessage) error {
	return nil
}

func (f *fakeRemote) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	return f.onboarded, f.onboardErr
}

func (f *fakeRemote) MarkOnboardingComplete(ctx context.Context) error {
	f.markedCount++
	return nil
}

/*************
 * Helpers
 *************/

func newReconciler(c cache.Cache, f *fakeRemote) (*Reconciler, *profiles.Store) {
	store := profiles.NewStore()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := New(Config{}, store, c, f, NewGuard(), logger)
	return r, store
}

func authed(principalID, email string, createdAt time.Time) models.IdentitySnapshot {
	return models.IdentitySnapshot{
		PrincipalID:     principalID,
		Email:           email,
		CreatedAt:       createdAt,
		IsAuthenticated: true,
	}
}

/*************
 * Rule tests
 *************/

func TestRemoteProfilesAdopted(t *testing.T) {
	// remote has two profiles, cache empty
	f := &fakeRemote{profiles: []models.Profile{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}}}
	c := newMemCache()
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)

	snap := store.Load()
	require.Len(t, snap.Profiles, 2)
	assert.Equal(t, "p1", snap.ActiveID)

	// hydrated set is written through to the cache
	raw, err := c.Get(context.Background(), cache.KeyProfiles)
	require.NoError(t, err)
	var cached []models.Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Len(t, cached, 2)
}

func TestRememberedActiveProfileKeptIfStillPresent(t *testing.T) {
	f := &fakeRemote{profiles: []models.Profile{{ID: "p1"}, {ID: "p2"}}}
	c := newMemCache()
	require.NoError(t, c.Set(context.Background(), cache.KeyActiveProfile, "p2"))
	r, store := newReconciler(c, f)

	_, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "p2", store.ActiveID())
}

func TestEmptyRemoteSamePrincipalAdoptsLocalAndWritesThrough(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	local := []models.Profile{{ID: "p1", Name: "Local"}}
	raw, _ := json.Marshal(local)
	require.NoError(t, c.Set(ctx, cache.KeyProfiles, string(raw)))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))
	require.NoError(t, c.Set(ctx, cache.KeySessionEmail, "u1@example.com"))

	f := &fakeRemote{}
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(ctx, authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)
	assert.Equal(t, "p1", store.ActiveID())
	require.Len(t, f.putsAll, 1)
	assert.Equal(t, "p1", f.putsAll[0][0].ID)
}

func TestOldAccountWithNoDataGetsRecoveryProfile(t *testing.T) {
	f := &fakeRemote{}
	c := newMemCache()
	r, store := newReconciler(c, f)

	created := time.Now().Add(-time.Hour)
	route, err := r.Reconcile(context.Background(), authed("u1", "jane.doe@example.com", created))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)

	snap := store.Load()
	require.Len(t, snap.Profiles, 1)
	assert.Equal(t, "jane.doe", snap.Profiles[0].Name)
	assert.NotEmpty(t, snap.Profiles[0].ID)
	assert.Equal(t, snap.Profiles[0].ID, snap.ActiveID)

	require.Len(t, f.putsSingle, 1)
	assert.Equal(t, 1, f.markedCount)
}

func TestOnboardedFlagTriggersRecoveryForFreshAccount(t *testing.T) {
	f := &fakeRemote{onboarded: true}
	c := newMemCache()
	r, _ := newReconciler(c, f)

	route, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)
	require.Len(t, f.putsSingle, 1)
}

func TestBrandNewAccountGoesToOnboarding(t *testing.T) {
	f := &fakeRemote{}
	c := newMemCache()
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteOnboarding, route)
	assert.Empty(t, store.Load().Profiles)
	assert.Empty(t, f.putsSingle)
}

/*************
 * Principal switch tests
 *************/

func TestDifferentPrincipalRaisesConflictNoticeAndPurges(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	local := []models.Profile{{ID: "p1"}}
	raw, _ := json.Marshal(local)
	require.NoError(t, c.Set(ctx, cache.KeyProfiles, string(raw)))
	require.NoError(t, c.Set(ctx, cache.KeyActiveProfile, "p1"))
	require.NoError(t, c.Set(ctx, cache.FeatureStateKey("p1", "blog"), `{"x":1}`))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))
	require.NoError(t, c.Set(ctx, cache.KeySessionEmail, "old@example.com"))

	f := &fakeRemote{}
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(ctx, authed("u2", "new@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteOnboarding, route)
	assert.Empty(t, store.Load().Profiles)

	notice := r.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, "old@example.com", notice.PreviousEmail)

	// old account's local traces are gone
	_, err = c.Get(ctx, cache.KeyProfiles)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = c.Get(ctx, cache.FeatureStateKey("p1", "blog"))
	assert.ErrorIs(t, err, common.ErrorNotFound)

	r.AcknowledgeNotice()
	assert.Nil(t, r.Notice())
}

func TestDifferentPrincipalWithRemoteDataDropsRememberedSelection(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, cache.KeyActiveProfile, "p9"))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))

	f := &fakeRemote{profiles: []models.Profile{{ID: "p9"}, {ID: "p2"}}}
	r, store := newReconciler(c, f)

	// p9 exists in u2's remote set too, but the remembered selection
	// belongs to u1 and must not carry over
	_, err := r.Reconcile(ctx, authed("u2", "u2@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "p9", store.Load().Profiles[0].ID)
	assert.Equal(t, "p9", store.ActiveID())

	rec, ok := loadSession(ctx, c)
	require.True(t, ok)
	assert.Equal(t, "u2", rec.PrincipalID)
}

func TestDifferentPrincipalRecoveryPurgesOldLocalData(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	local := []models.Profile{{ID: "p1"}}
	raw, _ := json.Marshal(local)
	require.NoError(t, c.Set(ctx, cache.KeyProfiles, string(raw)))
	require.NoError(t, c.Set(ctx, cache.KeyActiveProfile, "p1"))
	require.NoError(t, c.Set(ctx, cache.FeatureStateKey("p1", "calendar"), `{"ev":[1]}`))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))
	require.NoError(t, c.Set(ctx, cache.KeySessionEmail, "old@example.com"))

	// u2 is an old account with nothing remote, so the recovery rule fires
	f := &fakeRemote{}
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(ctx, authed("u2", "u2@example.com", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)

	snap := store.Load()
	require.Len(t, snap.Profiles, 1)
	assert.NotEqual(t, "p1", snap.Profiles[0].ID)

	// u1's local traces must not survive into u2's session
	_, err = c.Get(ctx, cache.FeatureStateKey("p1", "calendar"))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

/*************
 * Failure and idempotence tests
 *************/

func TestFetchFailureFallsBackToLocalForSamePrincipal(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	local := []models.Profile{{ID: "p1"}}
	raw, _ := json.Marshal(local)
	require.NoError(t, c.Set(ctx, cache.KeyProfiles, string(raw)))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))

	f := &fakeRemote{getErr: context.DeadlineExceeded}
	r, store := newReconciler(c, f)

	route, err := r.Reconcile(ctx, authed("u1", "u1@example.com", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)
	assert.Equal(t, "p1", store.ActiveID())
}

func TestFetchFailureWithoutLocalDataGoesToOnboarding(t *testing.T) {
	// even an old account is not recovered blindly when the remote
	// cannot be consulted
	f := &fakeRemote{getErr: context.DeadlineExceeded}
	c := newMemCache()
	r, _ := newReconciler(c, f)

	route, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, RouteOnboarding, route)
	assert.Empty(t, f.putsSingle)
}

func TestReconcileIsIdempotentPerPrincipal(t *testing.T) {
	f := &fakeRemote{profiles: []models.Profile{{ID: "p1"}}}
	c := newMemCache()
	r, store := newReconciler(c, f)

	snap := authed("u1", "u1@example.com", time.Now())
	route1, err := r.Reconcile(context.Background(), snap)
	require.NoError(t, err)
	first := store.Load()

	route2, err := r.Reconcile(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, route1, route2)
	assert.Equal(t, first, store.Load())
	assert.Equal(t, 1, f.getCount)
}

func TestSignOutResetsGuard(t *testing.T) {
	f := &fakeRemote{profiles: []models.Profile{{ID: "p1"}}}
	c := newMemCache()
	r, _ := newReconciler(c, f)

	snap := authed("u1", "u1@example.com", time.Now())
	_, err := r.Reconcile(context.Background(), snap)
	require.NoError(t, err)

	route, err := r.Reconcile(context.Background(), models.IdentitySnapshot{})
	require.NoError(t, err)
	assert.Equal(t, RouteNone, route)

	_, err = r.Reconcile(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, 2, f.getCount)
}

func TestInterruptedRunReleasesGuardForRetry(t *testing.T) {
	f := &fakeRemote{getPanic: true, profiles: []models.Profile{{ID: "p1"}}}
	c := newMemCache()
	r, store := newReconciler(c, f)

	snap := authed("u1", "u1@example.com", time.Now())
	func() {
		defer func() { _ = recover() }()
		_, _ = r.Reconcile(context.Background(), snap)
	}()
	assert.Equal(t, StateIdle, r.State())

	f.getPanic = false
	route, err := r.Reconcile(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)
	assert.Equal(t, "p1", store.ActiveID())
	assert.Equal(t, 2, f.getCount)
}

func TestCorruptCachedProfilesTreatedAsAbsent(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, cache.KeyProfiles, "{{{not json"))
	require.NoError(t, c.Set(ctx, cache.KeySessionPrincipalID, "u1"))

	f := &fakeRemote{}
	r, _ := newReconciler(c, f)

	route, err := r.Reconcile(ctx, authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, RouteOnboarding, route)

	_, err = c.Get(ctx, cache.KeyProfiles)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSessionRecordUpdatedAfterRun(t *testing.T) {
	f := &fakeRemote{}
	c := newMemCache()
	r, _ := newReconciler(c, f)

	ctx := context.Background()
	_, err := r.Reconcile(ctx, authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)

	rec, ok := loadSession(ctx, c)
	require.True(t, ok)
	assert.Equal(t, "u1", rec.PrincipalID)
	assert.Equal(t, "u1@example.com", rec.Email)
	assert.True(t, rec.IsNewUser)
	assert.False(t, rec.OnboardingComplete)
}

func TestStateReturnsToIdle(t *testing.T) {
	f := &fakeRemote{profiles: []models.Profile{{ID: "p1"}}}
	r, _ := newReconciler(newMemCache(), f)

	assert.Equal(t, StateIdle, r.State())
	_, err := r.Reconcile(context.Background(), authed("u1", "u1@example.com", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, StateIdle, r.State())
}
