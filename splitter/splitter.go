// Package splitter segments long-form text into bounded-size chunks while
// preserving as much semantic continuity as each strategy allows.
//
// Strategies range from the content-blind FixedWidth baseline to sentence-
// and paragraph-aware packing. All sizes are measured in runes, not bytes,
// so multi-byte text is never cut inside a character.
package splitter

// Chunk is a single bounded unit of text produced by a splitter.
type Chunk struct {
	// Content is the chunk's text.
	Content string

	// Index is the chunk's zero-based position in the output sequence.
	// Indices are contiguous with no gaps.
	Index int
}

// Splitter defines the interface for text segmentation strategies.
type Splitter interface {
	// Split segments text into an ordered chunk sequence. Empty input
	// yields an empty sequence; parameter problems are reported by the
	// strategy's constructor, never here.
	Split(text string) ([]Chunk, error)
}

// Strategy identifies a segmentation algorithm.
type Strategy string

const (
	// StrategyFixedWidth slices at raw character offsets.
	StrategyFixedWidth Strategy = "fixed_width"

	// StrategyOverlap is fixed-width slicing with a trailing overlap
	// window carried into the next chunk.
	StrategyOverlap Strategy = "overlap"

	// StrategySentence packs whole sentences up to a target and hard max.
	StrategySentence Strategy = "sentence"

	// StrategyParagraph packs whole paragraphs up to a target size.
	StrategyParagraph Strategy = "paragraph"

	// StrategyToken windows over model tokens rather than characters.
	StrategyToken Strategy = "token"
)

// Default sizes, in runes. Callers with model-specific budgets should pass
// their own.
const (
	DefaultTargetSize = 1000
	DefaultMaxSize    = 1200
	DefaultOverlap    = 100
)
