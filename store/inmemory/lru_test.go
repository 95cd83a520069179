package inmemory_test

import (
	"context"
	"testing"

	"github.com/botirk38/textsegment/store/inmemory"
	"github.com/botirk38/textsegment/types"
)

func testChunkSet(title string) types.ChunkSet {
	return types.ChunkSet{
		Title:    title,
		Splitter: "sentence",
		Chunks: []types.StoredChunk{
			{Content: "First chunk.", Index: 0, WordCount: 2},
			{Content: "Second chunk.", Index: 1, WordCount: 2},
		},
	}
}

func TestLRUStore_BasicOperations(t *testing.T) {
	store, err := inmemory.NewLRUStore(types.StoreConfig{Capacity: 3})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	if n, _ := store.Len(ctx); n != 0 {
		t.Errorf("expected empty store, got length %d", n)
	}

	if err := store.Set(ctx, "doc1", testChunkSet("Doc One")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	set, found, err := store.Get(ctx, "doc1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected doc1 to be found")
	}
	if set.Title != "Doc One" || len(set.Chunks) != 2 {
		t.Errorf("round trip mismatch: %+v", set)
	}

	if ok, _ := store.Contains(ctx, "doc1"); !ok {
		t.Error("Contains(doc1) = false, want true")
	}
	if ok, _ := store.Contains(ctx, "missing"); ok {
		t.Error("Contains(missing) = true, want false")
	}

	if err := store.Delete(ctx, "doc1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, "doc1"); found {
		t.Error("expected doc1 gone after delete")
	}
}

func TestLRUStore_Eviction(t *testing.T) {
	store, err := inmemory.NewLRUStore(types.StoreConfig{Capacity: 2})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	_ = store.Set(ctx, "a", testChunkSet("A"))
	_ = store.Set(ctx, "b", testChunkSet("B"))
	_ = store.Set(ctx, "c", testChunkSet("C"))

	if n, _ := store.Len(ctx); n != 2 {
		t.Errorf("expected capacity-bounded length 2, got %d", n)
	}
	if _, found, _ := store.Get(ctx, "a"); found {
		t.Error("expected oldest entry evicted")
	}
	if _, found, _ := store.Get(ctx, "c"); !found {
		t.Error("expected newest entry retained")
	}
}

func TestLRUStore_FlushAndKeys(t *testing.T) {
	store, err := inmemory.NewLRUStore(types.StoreConfig{Capacity: 5})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	_ = store.Set(ctx, "x", testChunkSet("X"))
	_ = store.Set(ctx, "y", testChunkSet("Y"))

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}

	if err := store.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if n, _ := store.Len(ctx); n != 0 {
		t.Errorf("expected empty store after flush, got %d", n)
	}
}

func TestLRUStore_CloseIdempotent(t *testing.T) {
	store, _ := inmemory.NewLRUStore(types.StoreConfig{Capacity: 1})
	if err := store.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
