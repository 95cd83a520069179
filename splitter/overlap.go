package splitter

// Overlap performs fixed-width splitting with a trailing overlap window
// carried into the next chunk, so text near a boundary appears on both
// sides of it. Adjacent chunks share exactly overlap runes, except possibly
// the final pair when the tail is shorter than width.
type Overlap struct {
	width   int
	overlap int
}

// NewOverlap creates an overlapping splitter. Requires 0 <= overlap < width;
// the strict inequality guarantees forward progress on every iteration.
func NewOverlap(width, overlap int) (*Overlap, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	if overlap < 0 {
		return nil, ErrInvalidOverlap
	}
	if overlap >= width {
		return nil, ErrOverlapTooLarge
	}
	return &Overlap{width: width, overlap: overlap}, nil
}

// Split walks the text in width-sized windows, backing up overlap runes
// between windows. Text no longer than width yields a single chunk.
func (s *Overlap) Split(text string) ([]Chunk, error) {
	runes := []rune(text)

	var chunks []Chunk
	start := 0
	for start < len(runes) {
		end := start + s.width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Content: string(runes[start:end]),
			Index:   len(chunks),
		})
		if end == len(runes) {
			break
		}
		start = end - s.overlap
	}
	return chunks, nil
}
