package splitter

import "testing"

func TestNewOverlap(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		overlap int
		wantErr error
	}{
		{name: "valid", width: 10, overlap: 3, wantErr: nil},
		{name: "zero overlap", width: 10, overlap: 0, wantErr: nil},
		{name: "zero width", width: 0, overlap: 0, wantErr: ErrInvalidWidth},
		{name: "negative overlap", width: 10, overlap: -1, wantErr: ErrInvalidOverlap},
		{name: "overlap equals width", width: 10, overlap: 10, wantErr: ErrOverlapTooLarge},
		{name: "overlap exceeds width", width: 10, overlap: 15, wantErr: ErrOverlapTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOverlap(tt.width, tt.overlap)
			if err != tt.wantErr {
				t.Errorf("NewOverlap(%d, %d) error = %v, wantErr %v", tt.width, tt.overlap, err, tt.wantErr)
			}
		})
	}
}

func TestOverlap_Split(t *testing.T) {
	t.Run("adjacent chunks share exactly overlap runes", func(t *testing.T) {
		s, err := NewOverlap(10, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		text := "abcdefghijklmnopqrstuvwxy" // 25 runes
		chunks, _ := s.Split(text)

		if len(chunks) != 4 {
			t.Fatalf("expected 4 chunks, got %d", len(chunks))
		}
		if len(chunks[0].Content) != 10 || len(chunks[1].Content) != 10 {
			t.Errorf("expected leading chunks of length 10, got %d and %d",
				len(chunks[0].Content), len(chunks[1].Content))
		}
		if len(chunks[3].Content) >= 10 {
			t.Errorf("expected a shorter final chunk, got length %d", len(chunks[3].Content))
		}

		for i := 0; i+1 < len(chunks); i++ {
			prev := []rune(chunks[i].Content)
			next := []rune(chunks[i+1].Content)
			shared := string(prev[len(prev)-3:])
			if string(next[:3]) != shared {
				t.Errorf("chunks %d/%d share %q and %q, want equal",
					i, i+1, shared, string(next[:3]))
			}
		}
	})

	t.Run("text within width yields one chunk", func(t *testing.T) {
		s, _ := NewOverlap(50, 10)
		chunks, _ := s.Split("fits in one")
		if len(chunks) != 1 {
			t.Fatalf("expected 1 chunk, got %d", len(chunks))
		}
		if chunks[0].Content != "fits in one" {
			t.Errorf("chunk = %q, want original text", chunks[0].Content)
		}
	})

	t.Run("zero overlap degenerates to fixed width", func(t *testing.T) {
		s, _ := NewOverlap(4, 0)
		chunks, _ := s.Split("abcdefgh")
		if len(chunks) != 2 || chunks[0].Content != "abcd" || chunks[1].Content != "efgh" {
			t.Errorf("unexpected chunks %v", chunks)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		s, _ := NewOverlap(10, 3)
		chunks, _ := s.Split("")
		if len(chunks) != 0 {
			t.Errorf("expected empty sequence, got %d chunks", len(chunks))
		}
	})

	t.Run("indices contiguous", func(t *testing.T) {
		s, _ := NewOverlap(5, 2)
		chunks, _ := s.Split("a long enough string to make several chunks")
		for i, chunk := range chunks {
			if chunk.Index != i {
				t.Errorf("chunk %d has index %d", i, chunk.Index)
			}
		}
	})
}
