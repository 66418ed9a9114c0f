// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Cache backends selectable via CacheBackend.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendBadger = "badger"
)

// Config holds runtime settings for the BizKeeper client.
//
// Fields:
//   - ServerEndpointAddr: address of the BizKeeper gRPC server.
//   - CacheBackend: local cache engine, "sqlite" or "badger".
//   - CachePath: sqlite DSN or badger directory for the local cache.
//   - OnlineCheckInterval: how often the background ping probes the server.
//   - RemoteTimeout: bound on the profile fetch that gates routing.
//   - DebounceWindow: coalescing window for remote feature state writes.
//   - ResyncInterval: period of the full profile re-push.
//   - RecoveryAgeThreshold: minimum account age for profile recovery.
type Config struct {
	ServerEndpointAddr   string
	CacheBackend         string
	CachePath            string
	OnlineCheckInterval  time.Duration
	RemoteTimeout        time.Duration
	DebounceWindow       time.Duration
	ResyncInterval       time.Duration
	RecoveryAgeThreshold time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CacheBackend = CacheBackendSQLite
	c.CachePath = "bizkeeper.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.RemoteTimeout = 5 * time.Second
	c.DebounceWindow = time.Second
	c.ResyncInterval = 2 * time.Minute
	c.RecoveryAgeThreshold = 2 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
