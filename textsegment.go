// Package textsegment segments long-form text into bounded-size chunks for
// retrieval and indexing, preserving the semantic continuity that naive
// fixed-width splitting destroys.
//
// The Pipeline ties the pieces together: a segmentation strategy, the
// structural annotator, the boundary-defect analyzer, and an optional
// document store for the results.
package textsegment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/botirk38/textsegment/analyzer"
	"github.com/botirk38/textsegment/annotate"
	"github.com/botirk38/textsegment/options"
	"github.com/botirk38/textsegment/splitter"
	"github.com/botirk38/textsegment/types"
)

// Result is the output of one pipeline run.
type Result struct {
	// Chunks are the annotated chunks in order.
	Chunks []annotate.AnnotatedChunk

	// Problems are the boundary defects the analyzer found.
	Problems []analyzer.Problem

	// Stored is the chunk set written to the configured store, nil when
	// no store is configured.
	Stored *types.ChunkSet
}

// Pipeline runs split, annotate, analyze, and optionally persist as one
// operation. Construct with New; zero configuration gives an annotating
// sentence pipeline with default sizes and no store.
type Pipeline struct {
	splitter  splitter.Splitter
	strategy  splitter.Strategy
	annotator *annotate.Annotator
	analyzer  *analyzer.Analyzer
	store     types.DocumentStore
}

// New creates a Pipeline from functional options. Invalid parameters are
// reported here, before any text is processed.
func New(opts ...options.Option) (*Pipeline, error) {
	cfg := options.NewConfig()
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Annotator == nil && cfg.Splitter == nil {
		a, err := annotate.NewAnnotator(splitter.DefaultTargetSize, splitter.DefaultMaxSize)
		if err != nil {
			return nil, err
		}
		cfg.Annotator = a
		cfg.Strategy = splitter.StrategySentence
	}
	if cfg.Analyzer == nil {
		a, err := analyzer.New()
		if err != nil {
			return nil, err
		}
		cfg.Analyzer = a
	}

	return &Pipeline{
		splitter:  cfg.Splitter,
		strategy:  cfg.Strategy,
		annotator: cfg.Annotator,
		analyzer:  cfg.Analyzer,
		store:     cfg.Store,
	}, nil
}

// Process segments text, analyzes the chunk boundaries, and persists the
// chunk set when a store is configured. The store write happens only after
// analysis completes, so a failed run never leaves a partial chunk set
// behind. Empty text produces an empty result.
func (p *Pipeline) Process(ctx context.Context, docID, title, text string) (*Result, error) {
	var annotated []annotate.AnnotatedChunk
	if p.annotator != nil {
		annotated = p.annotator.Annotate(text, title)
	} else {
		chunks, err := p.splitter.Split(text)
		if err != nil {
			return nil, fmt.Errorf("split: %w", err)
		}
		annotated = wrapChunks(chunks, title)
	}

	contents := make([]string, len(annotated))
	for i := range annotated {
		contents[i] = annotated[i].Content
	}

	result := &Result{
		Chunks:   annotated,
		Problems: p.analyzer.Analyze(contents),
	}

	if p.store != nil && len(annotated) > 0 {
		set := p.toChunkSet(title, annotated)
		if err := p.store.Set(ctx, docID, set); err != nil {
			return nil, fmt.Errorf("store chunk set: %w", err)
		}
		result.Stored = &set
	}
	return result, nil
}

// Analyze runs only the boundary analyzer over an externally produced chunk
// sequence.
func (p *Pipeline) Analyze(chunks []string) []analyzer.Problem {
	return p.analyzer.Analyze(chunks)
}

// Store exposes the configured document store, nil when none is set.
func (p *Pipeline) Store() types.DocumentStore {
	return p.store
}

// Close releases the configured store's resources, if any.
func (p *Pipeline) Close() error {
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

// wrapChunks lifts raw splitter output into annotated chunks with the
// metadata that is computable without structural analysis.
func wrapChunks(chunks []splitter.Chunk, title string) []annotate.AnnotatedChunk {
	annotated := make([]annotate.AnnotatedChunk, 0, len(chunks))
	for _, c := range chunks {
		annotated = append(annotated, annotate.AnnotatedChunk{
			Content: c.Content,
			Index:   c.Index,
			Metadata: annotate.Metadata{
				DocTitle:    title,
				ChunkIndex:  c.Index,
				TotalChunks: len(chunks),
				WordCount:   len(strings.Fields(c.Content)),
			},
		})
	}
	return annotated
}

func (p *Pipeline) toChunkSet(title string, annotated []annotate.AnnotatedChunk) types.ChunkSet {
	stored := make([]types.StoredChunk, 0, len(annotated))
	for _, ac := range annotated {
		stored = append(stored, types.StoredChunk{
			Content:    ac.Content,
			Index:      ac.Index,
			Section:    ac.Metadata.Section,
			Subsection: ac.Metadata.Subsection,
			WordCount:  ac.Metadata.WordCount,
			HasList:    ac.Metadata.HasList,
			HasCode:    ac.Metadata.HasCode,
		})
	}
	return types.ChunkSet{
		Title:     title,
		Splitter:  string(p.strategy),
		Chunks:    stored,
		CreatedAt: time.Now().Unix(),
	}
}
