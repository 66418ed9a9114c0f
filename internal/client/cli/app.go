// Package cli implements the interactive BizKeeper client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akozlovs/bizkeeper/internal/client/cache"
	"github.com/akozlovs/bizkeeper/internal/client/config"
	"github.com/akozlovs/bizkeeper/internal/client/featuresync"
	"github.com/akozlovs/bizkeeper/internal/client/identity"
	"github.com/akozlovs/bizkeeper/internal/client/profiles"
	"github.com/akozlovs/bizkeeper/internal/client/reconcile"
	"github.com/akozlovs/bizkeeper/internal/client/remote"
	"github.com/akozlovs/bizkeeper/internal/client/sched"
	"github.com/akozlovs/bizkeeper/internal/client/services"
	"github.com/akozlovs/bizkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config     *config.Config
	cache      cache.Cache
	client     *remote.GRPCClient
	identity   *identity.GRPCProvider
	store      *profiles.Store
	reconciler *reconcile.Reconciler
	sync       *featuresync.Sync
	profileSvc *services.ProfileService
	logger     logging.Logger
	Mode       Mode
	reader     *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	localCache, err := openCache(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("cannot open local cache: %w", err)
	}

	apiClient, err := remote.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	id := identity.NewGRPCProvider(apiClient)
	store := profiles.NewStore()

	rec := reconcile.New(reconcile.Config{
		RemoteTimeout:        c.RemoteTimeout,
		RecoveryAgeThreshold: c.RecoveryAgeThreshold,
	}, store, localCache, apiClient, reconcile.NewGuard(), logger)

	fs := featuresync.New(featuresync.Config{
		DebounceWindow: c.DebounceWindow,
		ResyncInterval: c.ResyncInterval,
	}, localCache, apiClient, sched.NewTimerScheduler(), id, store, logger)

	ps := services.NewProfileService(store, localCache, apiClient, fs, logger)

	return &App{
		config:     c,
		cache:      localCache,
		client:     apiClient,
		identity:   id,
		store:      store,
		reconciler: rec,
		sync:       fs,
		profileSvc: ps,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func openCache(ctx context.Context, c *config.Config) (cache.Cache, error) {
	switch c.CacheBackend {
	case config.CacheBackendSQLite:
		return cache.OpenSQLite(ctx, c.CachePath)
	case config.CacheBackendBadger:
		return cache.OpenBadger(c.CachePath)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.CacheBackend)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.cache.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.identity.Current().IsAuthenticated
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		fmt.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
