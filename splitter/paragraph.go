package splitter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Paragraphs are separated by blank lines: two or more consecutive newlines.
var paragraphSep = regexp.MustCompile(`\n{2,}`)

// Paragraph splits text into paragraphs and packs whole paragraphs into
// chunks bounded by a single target size. A paragraph that alone exceeds the
// target is handed to a Sentence splitter instead of being emitted as one
// giant chunk, so large paragraphs still get sentence-level granularity.
type Paragraph struct {
	target   int
	sentence *Sentence
}

// NewParagraph creates a paragraph-aware splitter. The sentence-level
// fallback uses target as both its target and its max.
func NewParagraph(target int) (*Paragraph, error) {
	if target < 1 {
		return nil, ErrInvalidTargetSize
	}
	sentence, err := NewSentence(target, target)
	if err != nil {
		return nil, err
	}
	return &Paragraph{target: target, sentence: sentence}, nil
}

// Split packs paragraphs with a fit-or-flush rule: append the whole
// paragraph when the accumulator stays within target, otherwise flush and
// start fresh. Empty paragraphs are discarded.
func (p *Paragraph) Split(text string) ([]Chunk, error) {
	paragraphs := paragraphSep.Split(text, -1)

	var chunks []Chunk
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, Chunk{
				Content: current.String(),
				Index:   len(chunks),
			})
			current.Reset()
			currentLen = 0
		}
	}
	merge := func(piece string) {
		size := utf8.RuneCountInString(piece)
		if currentLen+size > p.target {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
			currentLen += 2
		}
		current.WriteString(piece)
		currentLen += size
	}

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) > p.target {
			// Oversized paragraph: fall back to sentence-level
			// chunks, merged under the same fit-or-flush rule.
			sub, err := p.sentence.Split(para)
			if err != nil {
				return nil, err
			}
			for _, sc := range sub {
				merge(sc.Content)
			}
			continue
		}
		merge(para)
	}
	flush()

	return chunks, nil
}
