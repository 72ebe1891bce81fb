package analyzer

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"textstat/internal/domain"
	"textstat/internal/textclean"
)

const (
	DefaultTopWords       = 8
	DefaultMinWordLength  = 2
	DefaultWordsPerMinute = 200
)

// Options tunes the statistics. Non-positive TopWords and WordsPerMinute and a
// negative MinWordLength fall back to the defaults.
type Options struct {
	// TopWords caps the most frequent words table.
	TopWords int
	// MinWordLength is exclusive: only words longer than it are counted.
	MinWordLength int
	// WordsPerMinute is the reading speed used for the reading time estimate.
	WordsPerMinute int
}

// Analyzer computes descriptive statistics for free text.
type Analyzer struct {
	opts Options
}

// New creates an analyzer, applying defaults to unset options.
func New(opts Options) *Analyzer {
	if opts.TopWords <= 0 {
		opts.TopWords = DefaultTopWords
	}
	if opts.MinWordLength < 0 {
		opts.MinWordLength = DefaultMinWordLength
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = DefaultWordsPerMinute
	}
	return &Analyzer{opts: opts}
}

// NewDefault creates an analyzer with the default constants.
func NewDefault() *Analyzer {
	return New(Options{MinWordLength: DefaultMinWordLength})
}

// Analyze returns the statistics for raw. It is a pure function of its input.
func (a *Analyzer) Analyze(raw string) domain.AnalysisResult {
	words := Tokenize(textclean.ForAnalysis(raw))
	return domain.AnalysisResult{
		CharacterCount:    utf8.RuneCountInString(raw),
		WordCount:         len(words),
		ParagraphCount:    CountParagraphs(raw),
		LongestWord:       LongestWord(words),
		MostFrequentWords: TopWords(words, a.opts.MinWordLength, a.opts.TopWords),
		ReadingTime:       ReadingTime(len(words), a.opts.WordsPerMinute),
	}
}

// Tokenize splits cleaned text on whitespace, dropping empty tokens.
func Tokenize(cleaned string) []string {
	return strings.Fields(cleaned)
}

var paragraphBreakRe = regexp.MustCompile(`\r\n\r\n|\r\r|\n\n`)

// CountParagraphs counts blank-line separated blocks with visible content.
// It never reports fewer than one.
func CountParagraphs(raw string) int {
	n := 0
	for _, block := range paragraphBreakRe.Split(raw, -1) {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// LongestWord returns the first word of maximal length.
func LongestWord(words []string) string {
	longest := ""
	for _, w := range words {
		if len(w) > len(longest) {
			longest = w
		}
	}
	return longest
}

// TopWords ranks lowercased words longer than minLength by count. Equal
// counts keep the order in which each word was first seen.
func TopWords(words []string, minLength, limit int) []domain.WordFrequency {
	freq := orderedmap.New[string, int]()
	for _, w := range words {
		lw := strings.ToLower(w)
		if len(lw) <= minLength {
			continue
		}
		n, _ := freq.Get(lw)
		freq.Set(lw, n+1)
	}

	out := make([]domain.WordFrequency, 0, freq.Len())
	for pair := freq.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, domain.WordFrequency{Word: pair.Key, Count: pair.Value})
	}
	slices.SortStableFunc(out, func(x, y domain.WordFrequency) int {
		return cmp.Compare(y.Count, x.Count)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ReadingTime estimates how long wordCount words take to read at wpm words
// per minute, as "<n> seconds" below one minute and "<n> minutes" otherwise.
func ReadingTime(wordCount, wpm int) string {
	minutes := float64(wordCount) / float64(wpm)
	if minutes < 1 {
		return fmt.Sprintf("%d seconds", int(math.Ceil(minutes*60)))
	}
	return fmt.Sprintf("%d minutes", int(math.Ceil(minutes)))
}
