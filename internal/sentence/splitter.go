package sentence

import (
	"regexp"
	"strings"
)

const DefaultMinWords = 3

// Splitter breaks cleaned text into sentence fragments and keeps the ones
// long enough to stand on their own.
type Splitter struct {
	minWords int
	boundary *regexp.Regexp
}

// NewSplitter creates a splitter that keeps fragments with more than minWords
// tokens. A negative minWords falls back to DefaultMinWords.
func NewSplitter(minWords int) *Splitter {
	if minWords < 0 {
		minWords = DefaultMinWords
	}
	return &Splitter{
		minWords: minWords,
		boundary: regexp.MustCompile(`[.!?]+`),
	}
}

// Split returns the qualifying fragments in text order. Fragments are not
// trimmed; surrounding spaces are part of the fragment.
func (s *Splitter) Split(text string) []string {
	var out []string
	for _, frag := range s.boundary.Split(text, -1) {
		if s.qualifies(frag) {
			out = append(out, frag)
		}
	}
	return out
}

func (s *Splitter) qualifies(frag string) bool {
	trimmed := strings.TrimSpace(frag)
	if trimmed == "" {
		return false
	}
	return len(strings.Fields(trimmed)) > s.minWords
}
