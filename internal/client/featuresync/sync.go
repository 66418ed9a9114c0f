// Package featuresync keeps per-profile feature documents in step between
// the in-memory working copy, the local cache and the remote store. Local
// writes are synchronous; remote writes are debounced and coalesced.
package featuresync

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/profiles"
	"github.com/akozlovs/bizkeeper/internal/client/remote"
	"github.com/akozlovs/bizkeeper/internal/client/sched"
	"github.com/akozlovs/bizkeeper/internal/common"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

// IdentitySource yields the current signed-in identity. Remote traffic only
// happens while it reports an authenticated principal.
type IdentitySource interface {
	Current() models.IdentitySnapshot
}

// Config tunes the debounce window for remote writes and the periodic
// resync interval.
type Config struct {
	DebounceWindow time.Duration
	ResyncInterval time.Duration
}

const (
	DefaultDebounceWindow = time.Second
	DefaultResyncInterval = 2 * time.Minute
)

// writeKey identifies a debounced remote write. Keying by the pair keeps a
// write for one profile alive when a save for another profile on the same
// domain lands inside the same window.
type writeKey struct {
	profileID string
	domain    models.Domain
}

// Sync owns the in-memory feature documents of the active profile. A save
// always lands in the local cache first; the matching remote write is
// scheduled behind a debounce window and carries only the latest payload.
type Sync struct {
	cfg      Config
	cache    cache.Cache
	remote   remote.Store
	sched    sched.Scheduler
	identity IdentitySource
	store    *profiles.Store
	logger   logging.Logger

	mu            sync.Mutex
	activeProfile string
	mem           map[models.Domain]json.RawMessage
	pending       map[writeKey]json.RawMessage
	cancels       map[writeKey]func()
	stopResync    func()
	onUpdate      func(profileID string, domain models.Domain, doc json.RawMessage)
}

func New(cfg Config, c cache.Cache, r remote.Store, s sched.Scheduler, id IdentitySource, store *profiles.Store, logger logging.Logger) *Sync {
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = DefaultDebounceWindow
	}
	if cfg.ResyncInterval <= 0 {
		cfg.ResyncInterval = DefaultResyncInterval
	}
	return &Sync{
		cfg:      cfg,
		cache:    c,
		remote:   r,
		sched:    s,
		identity: id,
		store:    store,
		logger:   logger,
		mem:      map[models.Domain]json.RawMessage{},
		pending:  map[writeKey]json.RawMessage{},
		cancels:  map[writeKey]func(){},
	}
}

// OnUpdate registers a callback fired when a remote read lands a newer
// document for the active profile.
func (s *Sync) OnUpdate(fn func(profileID string, domain models.Domain, doc json.RawMessage)) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// ActiveProfile returns the profile id the in-memory state belongs to.
func (s *Sync) ActiveProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeProfile
}

// Load returns the local document for the pair, or nil when none exists.
// A corrupt cache entry is discarded and treated as absent. When signed in,
// a remote read is started in the background; its result wins over the
// local copy since it reflects the latest cross-device write.
func (s *Sync) Load(ctx context.Context, profileID string, domain models.Domain) (json.RawMessage, error) {
	doc := s.loadLocal(ctx, profileID, domain)

	s.mu.Lock()
	if s.activeProfile == profileID && doc != nil {
		s.mem[domain] = doc
	}
	s.mu.Unlock()

	if s.identity.Current().IsAuthenticated {
		go s.overlayRemote(ctx, profileID, domain)
	}

	return doc, nil
}

func (s *Sync) loadLocal(ctx context.Context, profileID string, domain models.Domain) json.RawMessage {
	raw, err := s.cache.Get(ctx, cache.FeatureStateKey(profileID, string(domain)))
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "cannot read cached feature state", "profile", profileID, "domain", domain, "error", err)
		}
		return nil
	}
	if !json.Valid([]byte(raw)) {
		s.logger.Warn(ctx, "discarding corrupt feature state", "profile", profileID, "domain", domain)
		_ = s.cache.Remove(ctx, cache.FeatureStateKey(profileID, string(domain)))
		return nil
	}
	return json.RawMessage(raw)
}

func (s *Sync) overlayRemote(ctx context.Context, profileID string, domain models.Domain) {
	doc, err := s.remote.GetFeatureState(ctx, profileID, domain)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "remote feature state read failed", "profile", profileID, "domain", domain, "error", err)
		}
		return
	}

	if err := s.cache.Set(ctx, cache.FeatureStateKey(profileID, string(domain)), string(doc)); err != nil {
		s.logger.Warn(ctx, "cannot cache remote feature state", "profile", profileID, "domain", domain, "error", err)
	}

	s.mu.Lock()
	var notify func(string, models.Domain, json.RawMessage)
	if s.activeProfile == profileID {
		s.mem[domain] = doc
		notify = s.onUpdate
	}
	s.mu.Unlock()

	if notify != nil {
		notify(profileID, domain, doc)
	}
}

// Save writes the document to the local cache synchronously and, when
// signed in, schedules a debounced remote write. Saves within one window
// coalesce into a single remote call carrying only the latest payload.
func (s *Sync) Save(ctx context.Context, profileID string, domain models.Domain, doc json.RawMessage) error {
	if err := s.cache.Set(ctx, cache.FeatureStateKey(profileID, string(domain)), string(doc)); err != nil {
		return err
	}

	s.mu.Lock()
	if s.activeProfile == profileID {
		s.mem[domain] = doc
	}
	if s.identity.Current().IsAuthenticated {
		k := writeKey{profileID: profileID, domain: domain}
		s.pending[k] = doc
		if cancel := s.cancels[k]; cancel != nil {
			cancel()
		}
		s.cancels[k] = s.sched.After(s.cfg.DebounceWindow, func() {
			s.flushPending(context.Background(), k)
		})
	}
	s.mu.Unlock()

	return nil
}

func (s *Sync) flushPending(ctx context.Context, k writeKey) {
	s.mu.Lock()
	doc, ok := s.pending[k]
	delete(s.pending, k)
	delete(s.cancels, k)
	s.mu.Unlock()
	if !ok {
		return
	}

	if err := s.remote.PutFeatureState(ctx, k.profileID, k.domain, doc); err != nil {
		s.logger.Warn(ctx, "remote feature state push failed", "profile", k.profileID, "domain", k.domain, "error", err)
		// keep it for the next resync unless a newer save superseded it
		s.mu.Lock()
		if _, newer := s.pending[k]; !newer {
			s.pending[k] = doc
		}
		s.mu.Unlock()
	}
}

// SwitchProfile flushes the outgoing profile's in-memory documents to the
// local cache, clears memory and loads the incoming profile, strictly in
// that order so nothing bleeds across profiles.
func (s *Sync) SwitchProfile(ctx context.Context, profileID string) {
	s.FlushSynchronously(ctx)

	s.mu.Lock()
	s.mem = map[models.Domain]json.RawMessage{}
	s.activeProfile = profileID
	s.mu.Unlock()

	if profileID == "" {
		return
	}
	for _, d := range models.Domains() {
		if _, err := s.Load(ctx, profileID, d); err != nil {
			s.logger.Warn(ctx, "cannot load feature state", "profile", profileID, "domain", d, "error", err)
		}
	}
}

// FlushSynchronously writes the active profile's in-memory documents to the
// local cache. It never touches the network; hosts call it on tab-hidden
// and before-unload signals.
func (s *Sync) FlushSynchronously(ctx context.Context) {
	s.mu.Lock()
	profileID := s.activeProfile
	docs := make(map[models.Domain]json.RawMessage, len(s.mem))
	for d, doc := range s.mem {
		docs[d] = doc
	}
	s.mu.Unlock()

	if profileID == "" {
		return
	}
	for d, doc := range docs {
		if err := s.cache.Set(ctx, cache.FeatureStateKey(profileID, string(d)), string(doc)); err != nil {
			s.logger.Warn(ctx, "cannot flush feature state", "profile", profileID, "domain", d, "error", err)
		}
	}
}

// Start arms the periodic resync. Each tick re-pushes the full profile list
// and retries any feature document whose debounced push failed.
func (s *Sync) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stopResync == nil {
		s.stopResync = s.sched.Every(s.cfg.ResyncInterval, func() {
			s.resync(ctx)
		})
	}
	s.mu.Unlock()
}

// Stop disarms the periodic resync and any pending debounce timers.
func (s *Sync) Stop() {
	s.mu.Lock()
	if s.stopResync != nil {
		s.stopResync()
		s.stopResync = nil
	}
	for k, cancel := range s.cancels {
		cancel()
		delete(s.cancels, k)
	}
	s.mu.Unlock()
}

func (s *Sync) resync(ctx context.Context) {
	if !s.identity.Current().IsAuthenticated {
		return
	}

	snap := s.store.Load()
	if len(snap.Profiles) > 0 {
		if err := s.remote.PutProfiles(ctx, snap.Profiles); err != nil {
			s.logger.Warn(ctx, "periodic profile resync failed", "error", err)
		}
	}

	s.mu.Lock()
	keys := make([]writeKey, 0, len(s.pending))
	for k := range s.pending {
		if _, armed := s.cancels[k]; !armed {
			keys = append(keys, k)
		}
	}
	s.mu.Unlock()

	for _, k := range keys {
		s.flushPending(ctx, k)
	}
}
