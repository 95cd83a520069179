// Package annotate attaches structural metadata to sentence-based chunks:
// the enclosing section and subsection headings, list and code presence,
// word counts, and short previews of neighboring chunks for debugging
// context loss at boundaries.
package annotate

import (
	"regexp"
	"strings"

	"github.com/botirk38/textsegment/splitter"
)

// DefaultPreviewWidth is the length, in runes, of the neighbor previews on
// each annotated chunk.
const DefaultPreviewWidth = 50

// DefaultCodeMarkers are the substrings that mark a chunk as containing a
// fenced code block or a function/definition keyword.
var DefaultCodeMarkers = []string{"```", "func ", "def ", "function "}

var (
	headingPattern = regexp.MustCompile(`(?m)^(#+)\s+(.+)$`)
	listPattern    = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)
)

// Metadata describes a chunk's place in the document's structure.
type Metadata struct {
	// DocTitle is the caller-supplied document title, possibly empty.
	DocTitle string

	// Section is the last level-1 heading at or before the chunk's start
	// offset, empty if none precedes it.
	Section string

	// Subsection is the last level-2 heading at or before the chunk's
	// start offset, empty if none precedes it.
	Subsection string

	// ChunkIndex is the chunk's zero-based position.
	ChunkIndex int

	// TotalChunks is the length of the chunk sequence.
	TotalChunks int

	// HasList reports whether the chunk contains a list marker.
	HasList bool

	// HasCode reports whether the chunk contains a code marker.
	HasCode bool

	// WordCount is the whitespace-delimited token count.
	WordCount int
}

// AnnotatedChunk is a chunk plus its structural metadata and neighbor
// previews.
type AnnotatedChunk struct {
	Content  string
	Index    int
	Metadata Metadata

	// OverlapPrevious is the tail of the preceding chunk, empty for the
	// first chunk. A debugging preview, not structural overlap.
	OverlapPrevious string

	// OverlapNext is the head of the following chunk, empty for the last
	// chunk.
	OverlapNext string
}

// Option configures an Annotator.
type Option func(*Annotator) error

// WithPreviewWidth overrides the neighbor preview length in runes.
func WithPreviewWidth(width int) Option {
	return func(a *Annotator) error {
		if width < 1 {
			return ErrInvalidPreviewWidth
		}
		a.previewWidth = width
		return nil
	}
}

// WithCodeMarkers overrides the substrings that flag code presence.
func WithCodeMarkers(markers ...string) Option {
	return func(a *Annotator) error {
		a.codeMarkers = markers
		return nil
	}
}

// Annotator wraps a sentence splitter and decorates its output with
// document-structure metadata. Metadata is a pure function of chunk
// position, the precomputed heading list, and chunk content.
type Annotator struct {
	sentence     *splitter.Sentence
	previewWidth int
	codeMarkers  []string
}

// NewAnnotator creates an annotator whose internal sentence splitter uses
// the given target and max sizes.
func NewAnnotator(target, max int, opts ...Option) (*Annotator, error) {
	sentence, err := splitter.NewSentence(target, max)
	if err != nil {
		return nil, err
	}
	a := &Annotator{
		sentence:     sentence,
		previewWidth: DefaultPreviewWidth,
		codeMarkers:  DefaultCodeMarkers,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// heading is one markdown-style heading occurrence, offset-sorted by
// construction since the scan walks the text left to right.
type heading struct {
	title string
	start int
	level int
}

func scanHeadings(text string) []heading {
	var headings []heading
	for _, m := range headingPattern.FindAllStringSubmatchIndex(text, -1) {
		headings = append(headings, heading{
			title: text[m[4]:m[5]],
			start: m[0],
			level: m[3] - m[2],
		})
	}
	return headings
}

// sectionFold tracks the last-seen level-1 and level-2 headings across a
// single left-to-right pass. Updates are monotonic: advance never rewinds,
// so a chunk can never pick up a heading that occurs after its start.
type sectionFold struct {
	headings   []heading
	next       int
	section    string
	subsection string
}

func (f *sectionFold) advance(offset int) {
	for f.next < len(f.headings) && f.headings[f.next].start <= offset {
		switch h := f.headings[f.next]; h.level {
		case 1:
			f.section = h.title
		case 2:
			f.subsection = h.title
		}
		f.next++
	}
}

// Annotate splits text with the internal sentence splitter and returns the
// chunks decorated with metadata. Empty text yields an empty sequence.
func (a *Annotator) Annotate(text, docTitle string) []AnnotatedChunk {
	// Sentence.Split cannot fail; its error return exists only to satisfy
	// the Splitter interface.
	base, _ := a.sentence.Split(text)
	if len(base) == 0 {
		return nil
	}

	fold := &sectionFold{headings: scanHeadings(text)}

	annotated := make([]AnnotatedChunk, 0, len(base))
	pos := 0
	for i, chunk := range base {
		start := locate(text, chunk.Content, pos)
		pos = start + len(chunk.Content)
		fold.advance(start)

		meta := Metadata{
			DocTitle:    docTitle,
			Section:     fold.section,
			Subsection:  fold.subsection,
			ChunkIndex:  i,
			TotalChunks: len(base),
			HasList:     listPattern.MatchString(chunk.Content),
			HasCode:     containsAny(chunk.Content, a.codeMarkers),
			WordCount:   len(strings.Fields(chunk.Content)),
		}

		ac := AnnotatedChunk{
			Content:  chunk.Content,
			Index:    i,
			Metadata: meta,
		}
		if i > 0 {
			ac.OverlapPrevious = tail(base[i-1].Content, a.previewWidth)
		}
		if i < len(base)-1 {
			ac.OverlapNext = head(base[i+1].Content, a.previewWidth)
		}
		annotated = append(annotated, ac)
	}
	return annotated
}

// locate finds content's start offset by forward search from the previous
// chunk's end, so duplicate text never re-matches an earlier occurrence.
// Space-joined chunks may not occur verbatim when the source separated the
// sentences with newlines; in that case the first word anchors the search,
// and as a last resort the scan position itself is used.
func locate(text, content string, from int) int {
	if from >= len(text) {
		return len(text)
	}
	if idx := strings.Index(text[from:], content); idx >= 0 {
		return from + idx
	}
	if fields := strings.Fields(content); len(fields) > 0 {
		if idx := strings.Index(text[from:], fields[0]); idx >= 0 {
			return from + idx
		}
	}
	return from
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
