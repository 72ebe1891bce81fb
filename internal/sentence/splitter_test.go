package sentence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textstat/internal/sentence"
)

func TestSplitter_Split(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		minWords int
		in       string
		want     []string
	}{
		{name: "empty", minWords: 3, in: "", want: nil},
		{name: "punctuation only", minWords: 3, in: "...!?", want: nil},
		{
			name:     "short fragments dropped",
			minWords: 3,
			in:       "Hello world. This is a simple test. Another one here.",
			want:     []string{" This is a simple test"},
		},
		{
			name:     "punctuation runs are one boundary",
			minWords: 3,
			in:       "One two three four?! Five six seven eight...",
			want:     []string{"One two three four", " Five six seven eight"},
		},
		{
			name:     "no trailing punctuation",
			minWords: 3,
			in:       "a b c d e",
			want:     []string{"a b c d e"},
		},
		{
			name:     "zero threshold keeps single words",
			minWords: 0,
			in:       "Hi. Yo!",
			want:     []string{"Hi", " Yo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sentence.NewSplitter(tt.minWords).Split(tt.in))
		})
	}
}

func TestNewSplitter_NegativeUsesDefault(t *testing.T) {
	t.Parallel()

	s := sentence.NewSplitter(-1)
	assert.Empty(t, s.Split("one two three"))
	assert.Equal(t, []string{"one two three four"}, s.Split("one two three four"))
}
