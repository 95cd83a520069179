// Package store creates document stores for segmented chunk sets.
package store

import (
	"errors"

	"github.com/botirk38/textsegment/store/inmemory"
	"github.com/botirk38/textsegment/store/remote"
	"github.com/botirk38/textsegment/types"
)

var ErrUnsupportedStore = errors.New("unsupported store type")

// NewStore creates a document store of the specified type.
func NewStore(storeType types.StoreType, config types.StoreConfig) (types.DocumentStore, error) {
	switch storeType {
	case types.StoreLRU:
		return NewLRUStore(config)
	case types.StoreRedis:
		return NewRedisStore(config)
	default:
		return nil, ErrUnsupportedStore
	}
}

// NewLRUStore creates an in-memory LRU store.
func NewLRUStore(config types.StoreConfig) (types.DocumentStore, error) {
	return inmemory.NewLRUStore(config)
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(config types.StoreConfig) (types.DocumentStore, error) {
	return remote.NewRedisStore(config)
}
