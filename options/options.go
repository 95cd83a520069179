// Package options provides functional options for configuring Pipeline
// instances.
package options

import (
	"errors"

	"github.com/botirk38/textsegment/analyzer"
	"github.com/botirk38/textsegment/annotate"
	"github.com/botirk38/textsegment/splitter"
	"github.com/botirk38/textsegment/store"
	"github.com/botirk38/textsegment/types"
)

// ErrConflictingSplitters indicates both an annotator and a raw splitter
// were configured; the annotator drives its own sentence splitter, so the
// two are mutually exclusive.
var ErrConflictingSplitters = errors.New("configure either an annotator or a raw splitter, not both")

// Option represents a configuration option for a Pipeline
type Option func(*Config) error

// Config holds the configuration for building a Pipeline
type Config struct {
	Splitter  splitter.Splitter
	Strategy  splitter.Strategy
	Annotator *annotate.Annotator
	Analyzer  *analyzer.Analyzer
	Store     types.DocumentStore
}

// NewConfig creates an empty configuration; the pipeline fills defaults for
// anything left unset.
func NewConfig() *Config {
	return &Config{}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Annotator != nil && c.Splitter != nil {
		return ErrConflictingSplitters
	}
	return nil
}

// WithAnnotator runs the sentence splitter with structural annotation,
// using target and max chunk sizes in runes.
func WithAnnotator(target, max int, opts ...annotate.Option) Option {
	return func(cfg *Config) error {
		a, err := annotate.NewAnnotator(target, max, opts...)
		if err != nil {
			return err
		}
		cfg.Annotator = a
		cfg.Strategy = splitter.StrategySentence
		return nil
	}
}

// WithSentenceSplitter selects raw sentence-aware splitting without
// structural annotation.
func WithSentenceSplitter(target, max int) Option {
	return func(cfg *Config) error {
		s, err := splitter.NewSentence(target, max)
		if err != nil {
			return err
		}
		cfg.Splitter = s
		cfg.Strategy = splitter.StrategySentence
		return nil
	}
}

// WithParagraphSplitter selects paragraph-aware splitting.
func WithParagraphSplitter(target int) Option {
	return func(cfg *Config) error {
		s, err := splitter.NewParagraph(target)
		if err != nil {
			return err
		}
		cfg.Splitter = s
		cfg.Strategy = splitter.StrategyParagraph
		return nil
	}
}

// WithFixedWidthSplitter selects the content-blind fixed-width baseline.
func WithFixedWidthSplitter(width int) Option {
	return func(cfg *Config) error {
		s, err := splitter.NewFixedWidth(width)
		if err != nil {
			return err
		}
		cfg.Splitter = s
		cfg.Strategy = splitter.StrategyFixedWidth
		return nil
	}
}

// WithOverlapSplitter selects fixed-width splitting with a trailing overlap
// window.
func WithOverlapSplitter(width, overlap int) Option {
	return func(cfg *Config) error {
		s, err := splitter.NewOverlap(width, overlap)
		if err != nil {
			return err
		}
		cfg.Splitter = s
		cfg.Strategy = splitter.StrategyOverlap
		return nil
	}
}

// WithTokenSplitter selects token-window splitting.
func WithTokenSplitter(config splitter.TokenConfig) Option {
	return func(cfg *Config) error {
		s, err := splitter.NewToken(config)
		if err != nil {
			return err
		}
		cfg.Splitter = s
		cfg.Strategy = splitter.StrategyToken
		return nil
	}
}

// WithAnalyzer overrides the boundary analyzer configuration.
func WithAnalyzer(opts ...analyzer.Option) Option {
	return func(cfg *Config) error {
		a, err := analyzer.New(opts...)
		if err != nil {
			return err
		}
		cfg.Analyzer = a
		return nil
	}
}

// WithLRUStore persists chunk sets to an in-memory LRU store.
func WithLRUStore(capacity int) Option {
	return func(cfg *Config) error {
		s, err := store.NewLRUStore(types.StoreConfig{Capacity: capacity})
		if err != nil {
			return err
		}
		cfg.Store = s
		return nil
	}
}

// WithRedisStore persists chunk sets to Redis.
func WithRedisStore(connectionString string) Option {
	return func(cfg *Config) error {
		s, err := store.NewRedisStore(types.StoreConfig{ConnectionString: connectionString})
		if err != nil {
			return err
		}
		cfg.Store = s
		return nil
	}
}

// WithStore persists chunk sets to a caller-provided store.
func WithStore(s types.DocumentStore) Option {
	return func(cfg *Config) error {
		cfg.Store = s
		return nil
	}
}
