// Package cache provides the local key/value cache the client survives
// restarts and offline periods with. Values are opaque strings; callers
// decide the encoding (JSON for structured entries).
package cache

import "context"

// Cache is a durable string key/value store. Get returns
// common.ErrorNotFound for absent keys. Remove of an absent key is a no-op.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
