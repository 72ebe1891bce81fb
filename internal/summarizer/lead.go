package summarizer

import (
	"strings"

	"textstat/internal/sentence"
	"textstat/internal/textclean"
)

const (
	DefaultMaxSentences = 3

	// Fallback is returned when no sentence qualifies for a summary.
	Fallback = "Unable to generate summary from the provided content. The text may contain too many special characters or code-like content."
)

// LeadSummarizer returns the first qualifying sentences of a text.
type LeadSummarizer struct {
	maxSentences int
	splitter     *sentence.Splitter
}

// NewLeadSummarizer creates a summarizer keeping at most maxSentences
// sentences of more than minWords words each.
func NewLeadSummarizer(maxSentences, minWords int) *LeadSummarizer {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	return &LeadSummarizer{
		maxSentences: maxSentences,
		splitter:     sentence.NewSplitter(minWords),
	}
}

// Summarize joins the leading qualifying sentences with ". " and ends the
// result with a period.
func (s *LeadSummarizer) Summarize(text string) string {
	sentences := s.splitter.Split(textclean.ForSummary(text))
	if len(sentences) == 0 {
		return Fallback
	}
	if len(sentences) > s.maxSentences {
		sentences = sentences[:s.maxSentences]
	}
	return join(sentences)
}

func join(sentences []string) string {
	return strings.Join(sentences, ". ") + "."
}
