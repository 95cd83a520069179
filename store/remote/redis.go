// Package remote provides network-backed document stores.
package remote

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/botirk38/textsegment/types"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "textsegment:"

// RedisStore implements DocumentStore on Redis. Chunk sets are stored as
// JSON strings under a configurable key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// parseRedisURL parses a Redis connection string into redis.Options.
// Accepts redis:// and rediss:// URLs as well as plain host:port addresses.
func parseRedisURL(connectionString string) (*redis.Options, error) {
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsed, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{Addr: parsed.Host}

		if parsed.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		if parsed.User != nil {
			opts.Username = parsed.User.Username()
			if password, ok := parsed.User.Password(); ok {
				opts.Password = password
			}
		}

		if parsed.Path != "" && parsed.Path != "/" {
			dbStr := strings.TrimPrefix(parsed.Path, "/")
			if db, err := strconv.Atoi(dbStr); err == nil {
				opts.DB = db
			}
		}

		return opts, nil
	}

	return &redis.Options{Addr: connectionString}, nil
}

// NewRedisStore creates a Redis-backed store and verifies the connection.
func NewRedisStore(config types.StoreConfig) (*RedisStore, error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Explicit config values win over URL components
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := defaultPrefix
	if prefixOpt, ok := config.Options["prefix"]; ok {
		if p, ok := prefixOpt.(string); ok {
			prefix = p
		}
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) key(docID string) string {
	return s.prefix + docID
}

// Set stores a chunk set as a JSON string.
func (s *RedisStore) Set(ctx context.Context, docID string, set types.ChunkSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal chunk set: %w", err)
	}
	if err := s.client.Set(ctx, s.key(docID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set chunk set in Redis: %w", err)
	}
	return nil
}

// Get retrieves a chunk set by document ID.
func (s *RedisStore) Get(ctx context.Context, docID string) (types.ChunkSet, bool, error) {
	payload, err := s.client.Get(ctx, s.key(docID)).Result()
	if err == redis.Nil {
		return types.ChunkSet{}, false, nil
	}
	if err != nil {
		return types.ChunkSet{}, false, fmt.Errorf("failed to get chunk set from Redis: %w", err)
	}

	var set types.ChunkSet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		return types.ChunkSet{}, false, fmt.Errorf("failed to unmarshal chunk set: %w", err)
	}
	return set, true, nil
}

// Delete removes a chunk set by document ID.
func (s *RedisStore) Delete(ctx context.Context, docID string) error {
	if err := s.client.Del(ctx, s.key(docID)).Err(); err != nil {
		return fmt.Errorf("failed to delete chunk set from Redis: %w", err)
	}
	return nil
}

// Contains checks if a document ID exists.
func (s *RedisStore) Contains(ctx context.Context, docID string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.key(docID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence in Redis: %w", err)
	}
	return exists > 0, nil
}

// scanKeys collects all keys under the store's prefix using SCAN.
func (s *RedisStore) scanKeys(ctx context.Context) ([]string, error) {
	pattern := s.prefix + "*"
	var keys []string
	var cursor uint64

	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys from Redis: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Flush clears all chunk sets under the store's prefix.
func (s *RedisStore) Flush(ctx context.Context) error {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to flush Redis: %w", err)
		}
	}
	return nil
}

// Len returns the number of chunk sets under the store's prefix.
func (s *RedisStore) Len(ctx context.Context) (int, error) {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Keys returns all stored document IDs.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	docIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		docIDs = append(docIDs, strings.TrimPrefix(key, s.prefix))
	}
	return docIDs, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
