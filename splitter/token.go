package splitter

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// TokenConfig bounds the Token splitter in model tokens rather than runes.
type TokenConfig struct {
	// MaxTokens is the budget of the downstream consumer, typically an
	// embedding model's context limit. Default: 8191.
	MaxTokens int

	// ChunkSize is the token window per chunk. Default: 512.
	ChunkSize int

	// ChunkOverlap is the number of tokens shared between consecutive
	// windows. Default: 50.
	ChunkOverlap int
}

// DefaultTokenConfig returns the default token splitting configuration.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		MaxTokens:    8191,
		ChunkSize:    512,
		ChunkOverlap: 50,
	}
}

// Validate checks the size constraints, reporting the first violation.
func (c TokenConfig) Validate() error {
	if c.MaxTokens <= 0 {
		return ErrInvalidMaxTokens
	}
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if c.ChunkSize > c.MaxTokens {
		return ErrChunkSizeExceedsMax
	}
	if c.ChunkOverlap < 0 {
		return ErrInvalidOverlap
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return ErrOverlapTooLarge
	}
	return nil
}

// Token windows over model tokens using tiktoken's cl100k_base encoding,
// for callers whose chunk budgets are token counts rather than characters.
// Unlike the character-based strategies its Split can fail, because the
// round-trip through the tokenizer can.
type Token struct {
	config   TokenConfig
	encoding tokenizer.Codec
}

// NewToken creates a token-window splitter.
func NewToken(config TokenConfig) (*Token, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid token config: %w", err)
	}
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return &Token{config: config, encoding: enc}, nil
}

// CountTokens counts the tokens in text under the splitter's encoding.
func (t *Token) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	ids, _, err := t.encoding.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	return len(ids), nil
}

// Split windows over the encoded text with a stride of ChunkSize minus
// ChunkOverlap, decoding each window back to text. Text that fits in a
// single window is returned verbatim.
func (t *Token) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}

	ids, _, err := t.encoding.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	total := len(ids)

	if total <= t.config.ChunkSize {
		return []Chunk{{Content: text, Index: 0}}, nil
	}

	stride := t.config.ChunkSize - t.config.ChunkOverlap

	var chunks []Chunk
	for start := 0; start < total; start += stride {
		end := start + t.config.ChunkSize
		if end > total {
			end = total
		}
		content, err := t.encoding.Decode(ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to decode chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, Chunk{Content: content, Index: len(chunks)})
		if end == total {
			break
		}
	}
	return chunks, nil
}
