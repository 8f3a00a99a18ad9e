package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text returns single chunk",
			text:       "hello world",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "exact chunk size returns single chunk",
			text:       strings.Repeat("a", 100),
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "long text splits with overlap",
			text:       strings.Repeat("a", 250),
			chunkSize:  100,
			overlap:    20,
			wantChunks: 3, // steps of 80: 0..100, 80..180, 160..250
		},
		{
			name:       "overlap larger than chunk falls back to full step",
			text:       strings.Repeat("a", 300),
			chunkSize:  100,
			overlap:    150,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("SplitText() chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}
			for i, c := range chunks {
				if len([]rune(c)) > tt.chunkSize {
					t.Errorf("chunk %d length %d exceeds chunkSize %d", i, len([]rune(c)), tt.chunkSize)
				}
			}
		})
	}
}

func TestSplitTextOverlapPreservesBoundary(t *testing.T) {
	text := "0123456789abcdefghij"
	chunks := SplitText(text, 10, 4)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	// The tail of each chunk must reappear at the head of the next.
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	tail := string(first[len(first)-4:])
	head := string(second[:4])
	if tail != head {
		t.Errorf("overlap mismatch: tail %q != head %q", tail, head)
	}
}

func TestSplitTextMultibyte(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 50)
	chunks := SplitText(text, 40, 8)

	// Splitting is rune-based, so no chunk may contain a broken rune.
	for i, c := range chunks {
		for _, r := range c {
			if r == '�' {
				t.Errorf("chunk %d contains a broken rune", i)
			}
		}
		if len([]rune(c)) > 40 {
			t.Errorf("chunk %d exceeds the rune budget", i)
		}
	}
}
