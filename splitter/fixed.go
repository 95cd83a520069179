package splitter

// FixedWidth slices text at raw character offsets with no awareness of
// content. It is the baseline the other strategies improve on and makes no
// semantic guarantees: sentences, words, even grapheme clusters spanning
// multiple runes can be cut mid-way.
type FixedWidth struct {
	width int
}

// NewFixedWidth creates a fixed-width splitter producing chunks of exactly
// width runes (the final chunk may be shorter).
func NewFixedWidth(width int) (*FixedWidth, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	return &FixedWidth{width: width}, nil
}

// Split slices text into ceil(len/width) chunks. Never fails.
func (s *FixedWidth) Split(text string) ([]Chunk, error) {
	runes := []rune(text)

	var chunks []Chunk
	for start := 0; start < len(runes); start += s.width {
		end := start + s.width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Content: string(runes[start:end]),
			Index:   len(chunks),
		})
	}
	return chunks, nil
}
