package cache

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/akozlovs/bizkeeper/internal/common"
)

// BadgerCache stores entries in an embedded badger key/value database.
// Selected over sqlite with the cache_backend option.
type BadgerCache struct {
	db *badger.DB
}

var _ Cache = (*BadgerCache)(nil)

// OpenBadger opens (creating if needed) a badger cache at path. An empty
// path opens an in-memory database, used by tests.
func OpenBadger(path string) (*BadgerCache, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerCache{db: db}, nil
}

func (c *BadgerCache) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = string(v)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (c *BadgerCache) Set(ctx context.Context, key string, value string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (c *BadgerCache) Remove(ctx context.Context, key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (c *BadgerCache) Close() error {
	return c.db.Close()
}
