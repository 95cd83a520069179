package splitter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTerminators are the sentence-terminal characters used when a
// splitter is built without an explicit set.
var DefaultTerminators = []rune{'.', '!', '?'}

// Sentence splits text into sentences and greedily packs them into chunks
// bounded by a target size and a hard max. A chunk boundary never falls
// inside a sentence unless that single sentence alone exceeds the max, in
// which case the sentence is emitted whole rather than truncated.
type Sentence struct {
	target      int
	max         int
	terminators []rune
}

// NewSentence creates a sentence-aware splitter with the default terminator
// set. Requires 1 <= target <= max.
func NewSentence(target, max int) (*Sentence, error) {
	return NewSentenceWithTerminators(target, max, DefaultTerminators)
}

// NewSentenceWithTerminators creates a sentence-aware splitter with a custom
// terminator set, for test substitution or localized punctuation.
func NewSentenceWithTerminators(target, max int, terminators []rune) (*Sentence, error) {
	if target < 1 {
		return nil, ErrInvalidTargetSize
	}
	if max < 1 {
		return nil, ErrInvalidMaxSize
	}
	if target > max {
		return nil, ErrTargetExceedsMax
	}
	if len(terminators) == 0 {
		return nil, ErrNoTerminators
	}
	return &Sentence{
		target:      target,
		max:         max,
		terminators: terminators,
	}, nil
}

// Split packs sentences into chunks. Per sentence, in order: flush when
// appending would overflow the max and the accumulator is non-empty; append
// when the result stays within the target; append anyway when it stays
// within the max (accepting overshoot beats a near-empty trailing chunk);
// otherwise the sentence alone exceeds the max and becomes its own chunk.
func (s *Sentence) Split(text string) ([]Chunk, error) {
	sentences := SplitSentences(text, s.terminators)

	var chunks []Chunk
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, Chunk{
				Content: strings.TrimSpace(current.String()),
				Index:   len(chunks),
			})
			current.Reset()
			currentLen = 0
		}
	}
	accumulate := func(sent string, size int) {
		if current.Len() > 0 {
			// The joining space counts toward the accumulated length
			// only after it is written; the fit checks above compare
			// against the bare sentence size.
			current.WriteString(" ")
			currentLen++
		}
		current.WriteString(sent)
		currentLen += size
	}

	for _, sent := range sentences {
		size := utf8.RuneCountInString(sent)
		switch {
		case currentLen+size > s.max && current.Len() > 0:
			flush()
			accumulate(sent, size)
		case currentLen+size <= s.target:
			accumulate(sent, size)
		case currentLen+size <= s.max:
			accumulate(sent, size)
		default:
			// Single sentence longer than max: oversized unit,
			// emitted whole on the next flush.
			flush()
			accumulate(sent, size)
		}
	}
	flush()

	return chunks, nil
}

// SplitSentences segments text into sentences at terminator-then-whitespace
// boundaries. This is a heuristic: abbreviations like "Dr." or "e.g." are
// not special-cased and produce false splits. Text with no boundary comes
// back as a single sentence.
func SplitSentences(text string, terminators []rune) []string {
	runes := []rune(text)

	var sentences []string
	var current []rune
	for i, r := range runes {
		current = append(current, r)
		if isTerminator(r, terminators) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(string(current)); s != "" {
				sentences = append(sentences, s)
			}
			current = current[:0]
		}
	}
	if s := strings.TrimSpace(string(current)); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune, terminators []rune) bool {
	for _, t := range terminators {
		if r == t {
			return true
		}
	}
	return false
}
