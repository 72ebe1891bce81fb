package cache

import (
	"crypto/sha1"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"textstat/internal/domain"
)

// ResultCache keeps recent analysis and summary results keyed by a content
// hash. It is safe for concurrent use. A zero size disables caching.
type ResultCache struct {
	analyses  *lru.Cache[string, domain.AnalysisResult]
	summaries *lru.Cache[string, string]
}

// New creates a cache holding up to size entries of each kind.
func New(size int) (*ResultCache, error) {
	if size <= 0 {
		return &ResultCache{}, nil
	}
	analyses, err := lru.New[string, domain.AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	summaries, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &ResultCache{analyses: analyses, summaries: summaries}, nil
}

func (c *ResultCache) GetAnalysis(text string) (domain.AnalysisResult, bool) {
	if c.analyses == nil {
		return domain.AnalysisResult{}, false
	}
	res, ok := c.analyses.Get(key(text))
	if !ok {
		return domain.AnalysisResult{}, false
	}
	return clone(res), true
}

func (c *ResultCache) PutAnalysis(text string, result domain.AnalysisResult) {
	if c.analyses == nil {
		return
	}
	c.analyses.Add(key(text), clone(result))
}

func (c *ResultCache) GetSummary(text string) (string, bool) {
	if c.summaries == nil {
		return "", false
	}
	return c.summaries.Get(key(text))
}

func (c *ResultCache) PutSummary(text, summary string) {
	if c.summaries == nil {
		return
	}
	c.summaries.Add(key(text), summary)
}

// Len reports the number of cached analyses.
func (c *ResultCache) Len() int {
	if c.analyses == nil {
		return 0
	}
	return c.analyses.Len()
}

func key(text string) string {
	h := sha1.Sum([]byte(text))
	return hex.EncodeToString(h[:])
}

// clone copies the word table so callers cannot mutate cached state.
func clone(r domain.AnalysisResult) domain.AnalysisResult {
	words := make([]domain.WordFrequency, len(r.MostFrequentWords))
	copy(words, r.MostFrequentWords)
	r.MostFrequentWords = words
	return r
}
