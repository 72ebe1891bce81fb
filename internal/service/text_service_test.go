package service_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textstat/internal/analyzer"
	"textstat/internal/cache"
	"textstat/internal/domain"
	"textstat/internal/loader"
	"textstat/internal/service"
	"textstat/internal/summarizer"
)

var _ domain.TextService = (*service.TextServiceImpl)(nil)

type countingAnalyzer struct {
	calls atomic.Int32
	inner domain.Analyzer
}

func (c *countingAnalyzer) Analyze(text string) domain.AnalysisResult {
	c.calls.Add(1)
	return c.inner.Analyze(text)
}

func newService(t *testing.T, an domain.Analyzer, cacheSize int) *service.TextServiceImpl {
	t.Helper()
	c, err := cache.New(cacheSize)
	require.NoError(t, err)
	return service.NewTextService(
		loader.New(0),
		an,
		summarizer.NewLeadSummarizer(3, 3),
		c,
		nil,
		4,
	)
}

func TestAnalyzeText_UsesCache(t *testing.T) {
	t.Parallel()

	an := &countingAnalyzer{inner: analyzer.NewDefault()}
	svc := newService(t, an, 8)

	first := svc.AnalyzeText("one two three")
	second := svc.AnalyzeText("one two three")

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), an.calls.Load())
	assert.Equal(t, 3, first.WordCount)
}

func TestAnalyzeText_NoCache(t *testing.T) {
	t.Parallel()

	an := &countingAnalyzer{inner: analyzer.NewDefault()}
	svc := service.NewTextService(loader.New(0), an, summarizer.NewLeadSummarizer(3, 3), nil, nil, 0)

	svc.AnalyzeText("x")
	svc.AnalyzeText("x")
	assert.Equal(t, int32(2), an.calls.Load())
}

func TestSummarizeText(t *testing.T) {
	t.Parallel()

	svc := newService(t, analyzer.NewDefault(), 8)
	assert.Equal(t, summarizer.Fallback, svc.SummarizeText(""))
	assert.Equal(t, "a b c d e.", svc.SummarizeText("a b c d e"))
	assert.Equal(t, "a b c d e.", svc.SummarizeText("a b c d e"))
}

func TestAnalyzeDocuments_OrderAndSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"b.txt": "Beta file has exactly six words.",
		"a.txt": "Alpha file words.\n\nSecond paragraph here.",
		"c.md":  "# not matched by the txt glob",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	svc := newService(t, analyzer.NewDefault(), 8)
	reports, err := svc.AnalyzeDocuments(context.Background(), []string{
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "*.txt"),
	}, true)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, filepath.Join(dir, "b.txt"), reports[0].Document.Path)
	assert.Equal(t, filepath.Join(dir, "a.txt"), reports[1].Document.Path)
	assert.Equal(t, 6, reports[0].Analysis.WordCount)
	assert.Equal(t, 2, reports[1].Analysis.ParagraphCount)
	assert.Equal(t, "Beta file has exactly six words.", reports[0].Summary)
	assert.Equal(t, summarizer.Fallback, reports[1].Summary)
}

func TestAnalyzeDocuments_GlobSkipsBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("fine words"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img.png"), []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))

	svc := newService(t, analyzer.NewDefault(), 0)
	reports, err := svc.AnalyzeDocuments(context.Background(), []string{filepath.Join(dir, "*")}, false)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, filepath.Join(dir, "ok.txt"), reports[0].Document.Path)
	assert.Empty(t, reports[0].Summary)
}

func TestAnalyzeDocuments_ExplicitBinaryFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))

	svc := newService(t, analyzer.NewDefault(), 0)
	_, err := svc.AnalyzeDocuments(context.Background(), []string{path}, false)
	assert.ErrorIs(t, err, loader.ErrUnsupportedType)
}

func TestAnalyzeDocuments_NoDocuments(t *testing.T) {
	t.Parallel()

	svc := newService(t, analyzer.NewDefault(), 0)

	_, err := svc.AnalyzeDocuments(context.Background(), nil, false)
	assert.ErrorIs(t, err, service.ErrNoDocuments)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img.png"), []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))
	_, err = svc.AnalyzeDocuments(context.Background(), []string{filepath.Join(dir, "*.png")}, false)
	assert.ErrorIs(t, err, service.ErrNoDocuments)
}

func TestAnalyzeDocuments_MissingFile(t *testing.T) {
	t.Parallel()

	svc := newService(t, analyzer.NewDefault(), 0)
	_, err := svc.AnalyzeDocuments(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")}, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
