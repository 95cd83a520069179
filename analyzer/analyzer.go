// Package analyzer detects boundary defects in a chunk sequence: breaks in
// the middle of a sentence, cross-references whose antecedent likely lives
// in another chunk, and list items severed from their introducing header.
//
// The analyzer is purely diagnostic. It never mutates its input, carries no
// state between calls, and is independent of how the chunks were produced,
// so it can measure the structural quality of any splitter.
package analyzer

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind classifies a boundary defect.
type Kind string

const (
	// SemanticBreak marks a chunk that starts mid-sentence.
	SemanticBreak Kind = "semantic_break"

	// ReferenceLoss marks a chunk containing a backward or forward
	// reference whose context may be in a different chunk.
	ReferenceLoss Kind = "reference_loss"

	// StructuralDestruction marks a list item separated from the header
	// that introduced it.
	StructuralDestruction Kind = "structural_destruction"
)

// Problem is one detected boundary defect.
type Problem struct {
	// ChunkIndex is where the defect manifests.
	ChunkIndex int

	// Kind classifies the defect.
	Kind Kind

	// Description is a human-readable explanation.
	Description string

	// Example is a short snippet from the chunk for diagnostics.
	Example string
}

// Defaults used when the corresponding option is not supplied.
var (
	// DefaultReferencePhrases are the cross-reference phrases scanned
	// for, matched case-insensitively.
	DefaultReferencePhrases = []string{
		"as mentioned above",
		"see table",
		"following the previous",
		"as described earlier",
		"refer to section",
	}

	// DefaultListMarkers are the tokens that open a list item.
	DefaultListMarkers = []string{"- ", "* ", "• ", "1. ", "2. ", "3. "}

	// DefaultTerminators are the sentence-terminal characters.
	DefaultTerminators = []rune{'.', '!', '?'}
)

// DefaultContextWindow is the number of runes of surrounding context kept on
// each side of a matched reference phrase.
const DefaultContextWindow = 30

// exampleWidth bounds the snippet attached to non-phrase problems, in runes.
const exampleWidth = 50

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithReferencePhrases replaces the reference phrase set. Phrases are
// matched case-insensitively; an empty set disables the rule.
func WithReferencePhrases(phrases ...string) Option {
	return func(a *Analyzer) error {
		lowered := make([]string, len(phrases))
		for i, p := range phrases {
			lowered[i] = strings.ToLower(p)
		}
		a.phrases = lowered
		return nil
	}
}

// WithContextWindow overrides the excerpt context width.
func WithContextWindow(window int) Option {
	return func(a *Analyzer) error {
		if window < 1 {
			return ErrInvalidContextWindow
		}
		a.contextWindow = window
		return nil
	}
}

// WithSentenceTerminators replaces the sentence-terminal character set used
// by the mid-sentence rule.
func WithSentenceTerminators(terminators ...rune) Option {
	return func(a *Analyzer) error {
		if len(terminators) == 0 {
			return ErrNoTerminators
		}
		a.terminators = terminators
		return nil
	}
}

// WithListMarkers replaces the list-marker token set used by the separated
// list item rule.
func WithListMarkers(markers ...string) Option {
	return func(a *Analyzer) error {
		a.listMarkers = markers
		return nil
	}
}

// Analyzer detects boundary defects in chunk sequences.
type Analyzer struct {
	phrases       []string
	listMarkers   []string
	terminators   []rune
	contextWindow int
}

// New creates an analyzer with the documented defaults, modified by opts.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		phrases:       DefaultReferencePhrases,
		listMarkers:   DefaultListMarkers,
		terminators:   DefaultTerminators,
		contextWindow: DefaultContextWindow,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Analyze reports every boundary defect in the chunk sequence, in chunk
// order with rules evaluated in a fixed order per chunk, so two runs over
// the same input yield identical output.
func (a *Analyzer) Analyze(chunks []string) []Problem {
	var problems []Problem

	for i, chunk := range chunks {
		if i > 0 && !a.endsSentence(chunks[i-1]) {
			problems = append(problems, Problem{
				ChunkIndex:  i,
				Kind:        SemanticBreak,
				Description: "chunk starts mid-sentence",
				Example:     snippet(chunk),
			})
		}

		lowered := strings.ToLower(chunk)
		for _, phrase := range a.phrases {
			if strings.Contains(lowered, phrase) {
				problems = append(problems, Problem{
					ChunkIndex:  i,
					Kind:        ReferenceLoss,
					Description: fmt.Sprintf("contains reference %q but its context may be in a different chunk", phrase),
					Example:     a.excerpt(chunk, phrase),
				})
			}
		}

		if a.startsListItem(chunk) && (i == 0 || !endsWithColon(chunks[i-1])) {
			problems = append(problems, Problem{
				ChunkIndex:  i,
				Kind:        StructuralDestruction,
				Description: "list item separated from its introducing header",
				Example:     snippet(chunk),
			})
		}
	}
	return problems
}

func (a *Analyzer) endsSentence(chunk string) bool {
	trimmed := strings.TrimRight(chunk, " \t\r\n")
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	last := runes[len(runes)-1]
	for _, t := range a.terminators {
		if last == t {
			return true
		}
	}
	return false
}

func (a *Analyzer) startsListItem(chunk string) bool {
	trimmed := strings.TrimSpace(chunk)
	for _, marker := range a.listMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

func endsWithColon(chunk string) bool {
	return strings.HasSuffix(strings.TrimRight(chunk, " \t\r\n"), ":")
}

// excerpt returns the phrase match with up to contextWindow runes of
// surrounding text on each side, clipped to the chunk bounds. The match is
// located in the original string, not a lowered copy, so runes whose
// lowercase form has a different encoded length cannot skew the offsets.
func (a *Analyzer) excerpt(chunk, phrase string) string {
	runes := []rune(chunk)
	target := []rune(phrase)
	idx := indexFold(runes, target)
	if idx < 0 {
		return ""
	}
	start := idx - a.contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(target) + a.contextWindow
	if end > len(runes) {
		end = len(runes)
	}
	return "..." + string(runes[start:end]) + "..."
}

// indexFold returns the rune offset of the first occurrence of target in
// runes under per-rune lowercase folding, or -1. target must already be
// lowercase.
func indexFold(runes, target []rune) int {
	if len(target) == 0 {
		return -1
	}
	for i := 0; i+len(target) <= len(runes); i++ {
		match := true
		for j, t := range target {
			if unicode.ToLower(runes[i+j]) != t {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func snippet(chunk string) string {
	runes := []rune(chunk)
	if len(runes) <= exampleWidth {
		return chunk
	}
	return string(runes[:exampleWidth]) + "..."
}
