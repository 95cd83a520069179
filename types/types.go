// Package types holds the shared persistence-facing types: the stored form
// of a segmented document and the DocumentStore interface its stores
// implement.
package types

import "context"

// StoredChunk is the persisted form of one annotated chunk.
type StoredChunk struct {
	Content    string `json:"content"`
	Index      int    `json:"index"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
	WordCount  int    `json:"word_count"`
	HasList    bool   `json:"has_list,omitempty"`
	HasCode    bool   `json:"has_code,omitempty"`
}

// ChunkSet is one document's complete segmentation output.
type ChunkSet struct {
	// Title is the caller-supplied document title.
	Title string `json:"title"`

	// Splitter names the strategy that produced the chunks.
	Splitter string `json:"splitter"`

	// Chunks are the stored chunks in index order.
	Chunks []StoredChunk `json:"chunks"`

	// CreatedAt is the unix timestamp of the segmentation run.
	CreatedAt int64 `json:"created_at"`
}

// DocumentStore defines the interface for chunk-set storage backends,
// keyed by caller-chosen document IDs. This allows pluggable storage
// including in-memory and Redis.
type DocumentStore interface {
	// Set stores a chunk set under a document ID
	Set(ctx context.Context, docID string, set ChunkSet) error

	// Get retrieves a chunk set by document ID
	Get(ctx context.Context, docID string) (ChunkSet, bool, error)

	// Delete removes a chunk set by document ID
	Delete(ctx context.Context, docID string) error

	// Contains checks if a document ID exists without retrieving it
	Contains(ctx context.Context, docID string) (bool, error)

	// Flush clears all chunk sets from the store
	Flush(ctx context.Context) error

	// Len returns the number of stored chunk sets
	Len(ctx context.Context) (int, error)

	// Keys returns all stored document IDs
	Keys(ctx context.Context) ([]string, error)

	// Close closes the store and releases resources
	Close() error
}

// StoreConfig provides configuration options for stores
type StoreConfig struct {
	// For in-memory stores
	Capacity int

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// Additional options
	Options map[string]any
}

// StoreType represents the type of document store
type StoreType string

const (
	StoreLRU   StoreType = "lru"
	StoreRedis StoreType = "redis"
)
