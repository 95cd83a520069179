// Package inmemory provides in-process document stores.
package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/textsegment/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUStore implements DocumentStore with LRU eviction, for callers that
// re-segment a working set of documents and want the recent results kept.
type LRUStore struct {
	mu       sync.RWMutex
	cache    *lru.Cache[string, types.ChunkSet]
	capacity int
}

// NewLRUStore creates an in-memory store bounded by config.Capacity.
func NewLRUStore(config types.StoreConfig) (*LRUStore, error) {
	cache, err := lru.New[string, types.ChunkSet](config.Capacity)
	if err != nil {
		return nil, err
	}
	return &LRUStore{cache: cache, capacity: config.Capacity}, nil
}

// Set stores a chunk set, evicting the least recently used on overflow.
func (s *LRUStore) Set(ctx context.Context, docID string, set types.ChunkSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(docID, set)
	return nil
}

// Get retrieves a chunk set by document ID.
func (s *LRUStore) Get(ctx context.Context, docID string) (types.ChunkSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if set, ok := s.cache.Get(docID); ok {
		return set, true, nil
	}
	return types.ChunkSet{}, false, nil
}

// Delete removes a chunk set by document ID.
func (s *LRUStore) Delete(ctx context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(docID)
	return nil
}

// Contains checks for a document ID without affecting recency.
func (s *LRUStore) Contains(ctx context.Context, docID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Contains(docID), nil
}

// Flush clears all chunk sets.
func (s *LRUStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
	return nil
}

// Len returns the number of stored chunk sets.
func (s *LRUStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Len(), nil
}

// Keys returns the stored document IDs, least recently used first.
func (s *LRUStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Keys(), nil
}

// Close is a no-op for the in-memory store.
func (s *LRUStore) Close() error {
	return nil
}
