package splitter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewSentence(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		max     int
		wantErr error
	}{
		{name: "valid", target: 100, max: 120, wantErr: nil},
		{name: "target equals max", target: 100, max: 100, wantErr: nil},
		{name: "zero target", target: 0, max: 100, wantErr: ErrInvalidTargetSize},
		{name: "negative target", target: -1, max: 100, wantErr: ErrInvalidTargetSize},
		{name: "zero max", target: 10, max: 0, wantErr: ErrInvalidMaxSize},
		{name: "target exceeds max", target: 200, max: 100, wantErr: ErrTargetExceedsMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSentence(tt.target, tt.max)
			if err != tt.wantErr {
				t.Errorf("NewSentence(%d, %d) error = %v, wantErr %v", tt.target, tt.max, err, tt.wantErr)
			}
		})
	}

	t.Run("empty terminator set", func(t *testing.T) {
		_, err := NewSentenceWithTerminators(10, 20, nil)
		if err != ErrNoTerminators {
			t.Errorf("expected ErrNoTerminators, got %v", err)
		}
	})
}

func TestSentence_Split(t *testing.T) {
	t.Run("each sentence isolated when pairs exceed max", func(t *testing.T) {
		s, err := NewSentence(15, 20)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		chunks, _ := s.Split("Sentence one. Sentence two. Sentence three.")

		want := []string{"Sentence one.", "Sentence two.", "Sentence three."}
		if len(chunks) != len(want) {
			t.Fatalf("expected %d chunks, got %d: %v", len(want), len(chunks), chunks)
		}
		for i, chunk := range chunks {
			if chunk.Content != want[i] {
				t.Errorf("chunk %d = %q, want %q", i, chunk.Content, want[i])
			}
		}
	})

	t.Run("sentences pack under target", func(t *testing.T) {
		s, _ := NewSentence(100, 120)
		chunks, _ := s.Split("One. Two. Three.")
		if len(chunks) != 1 {
			t.Fatalf("expected 1 chunk, got %d", len(chunks))
		}
		if chunks[0].Content != "One. Two. Three." {
			t.Errorf("chunk = %q", chunks[0].Content)
		}
	})

	t.Run("overshoot up to max accepted", func(t *testing.T) {
		// First sentence fills the target; the second fits only under
		// the max and should be appended rather than orphaned.
		first := strings.Repeat("a", 48) + ". "
		second := "Tail one."
		s, _ := NewSentence(50, 60)
		chunks, _ := s.Split(first + second)
		if len(chunks) != 1 {
			t.Fatalf("expected 1 chunk with accepted overshoot, got %d: %v", len(chunks), chunks)
		}
	})

	t.Run("oversized sentence emitted whole", func(t *testing.T) {
		long := strings.Repeat("word ", 30) + "end."
		s, _ := NewSentence(20, 30)
		chunks, _ := s.Split("Short one. " + long)
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(chunks))
		}
		if utf8.RuneCountInString(chunks[1].Content) <= 30 {
			t.Errorf("expected oversized chunk, got length %d", utf8.RuneCountInString(chunks[1].Content))
		}
		if !strings.HasSuffix(chunks[1].Content, "end.") {
			t.Errorf("oversized sentence truncated: %q", chunks[1].Content)
		}
	})

	t.Run("no terminators degrades to one chunk", func(t *testing.T) {
		s, _ := NewSentence(10, 15)
		chunks, _ := s.Split("no terminator anywhere in this text")
		if len(chunks) != 1 {
			t.Fatalf("expected 1 chunk, got %d", len(chunks))
		}
	})

	t.Run("empty text", func(t *testing.T) {
		s, _ := NewSentence(10, 15)
		chunks, _ := s.Split("")
		if len(chunks) != 0 {
			t.Errorf("expected empty sequence, got %d chunks", len(chunks))
		}
	})

	t.Run("non-whitespace round trip", func(t *testing.T) {
		text := "First sentence here. Second one follows! Third asks? Fourth ends."
		s, _ := NewSentence(30, 40)
		chunks, _ := s.Split(text)

		var joined strings.Builder
		for _, chunk := range chunks {
			joined.WriteString(chunk.Content)
		}
		if stripSpace(joined.String()) != stripSpace(text) {
			t.Errorf("non-whitespace content not preserved:\n got %q\nwant %q",
				stripSpace(joined.String()), stripSpace(text))
		}
	})

	t.Run("boundaries respect sentences", func(t *testing.T) {
		text := "Alpha beta gamma. Delta epsilon zeta. Eta theta iota. Kappa lambda mu."
		s, _ := NewSentence(25, 40)
		chunks, _ := s.Split(text)
		for i, chunk := range chunks {
			if !strings.HasSuffix(chunk.Content, ".") {
				t.Errorf("chunk %d breaks mid-sentence: %q", i, chunk.Content)
			}
			if chunk.Index != i {
				t.Errorf("chunk %d has index %d", i, chunk.Index)
			}
		}
	})
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminator then whitespace",
			text: "One. Two! Three? Four.",
			want: []string{"One.", "Two!", "Three?", "Four."},
		},
		{
			name: "terminator at end of text",
			text: "Only one here.",
			want: []string{"Only one here."},
		},
		{
			name: "newline after terminator",
			text: "First line.\nSecond line.",
			want: []string{"First line.", "Second line."},
		},
		{
			name: "abbreviations split falsely",
			text: "Dr. Smith arrived.",
			want: []string{"Dr.", "Smith arrived."},
		},
		{
			name: "no terminator",
			text: "no boundary here",
			want: []string{"no boundary here"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text, DefaultTerminators)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
