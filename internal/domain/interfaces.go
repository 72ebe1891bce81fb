package domain

import "context"

// Document represents a single text input loaded into the system.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Path    string `json:"path" yaml:"path"`
	Content string `json:"-" yaml:"-"`
	Size    int64  `json:"size" yaml:"size"`
}

// WordFrequency is one entry of the most frequent words table.
type WordFrequency struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// AnalysisResult holds the descriptive statistics computed for a text.
type AnalysisResult struct {
	CharacterCount    int             `json:"characterCount" yaml:"character_count"`
	WordCount         int             `json:"wordCount" yaml:"word_count"`
	ParagraphCount    int             `json:"paragraphCount" yaml:"paragraph_count"`
	LongestWord       string          `json:"longestWord" yaml:"longest_word"`
	MostFrequentWords []WordFrequency `json:"mostFrequentWords" yaml:"most_frequent_words"`
	ReadingTime       string          `json:"readingTime" yaml:"reading_time"`
}

// Report bundles a document with its analysis and, optionally, its summary.
type Report struct {
	Document Document       `json:"document" yaml:"document"`
	Analysis AnalysisResult `json:"analysis" yaml:"analysis"`
	Summary  string         `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Analyzer computes statistics for raw text. It never fails.
type Analyzer interface {
	Analyze(text string) AnalysisResult
}

// Summarizer produces a brief extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string) string
}

// Loader reads a document from a path and decodes it to text.
type Loader interface {
	Load(ctx context.Context, path string) (Document, error)
}

// ResultCache memoizes analysis and summary results by content.
type ResultCache interface {
	GetAnalysis(text string) (AnalysisResult, bool)
	PutAnalysis(text string, result AnalysisResult)
	GetSummary(text string) (string, bool)
	PutSummary(text, summary string)
}

// TextService defines the operations exposed by the application core.
type TextService interface {
	AnalyzeText(text string) AnalysisResult
	SummarizeText(text string) string
	AnalyzeDocuments(ctx context.Context, patterns []string, withSummary bool) ([]Report, error)
}
