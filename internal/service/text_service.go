package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"textstat/internal/domain"
	"textstat/internal/loader"
	"textstat/internal/logger"
)

// ErrNoDocuments is returned when no pattern resolves to a readable text document.
var ErrNoDocuments = errors.New("no text documents found")

// TextServiceImpl wires the loader, analyzer, summarizer and cache together.
type TextServiceImpl struct {
	loader     domain.Loader
	analyzer   domain.Analyzer
	summarizer domain.Summarizer
	cache      domain.ResultCache
	log        logger.Logger
	workers    int
}

// NewTextService creates the service. cache and log may be nil.
func NewTextService(ld domain.Loader, an domain.Analyzer, sum domain.Summarizer, cache domain.ResultCache, log logger.Logger, workers int) *TextServiceImpl {
	if log == nil {
		log = logger.Nop()
	}
	if workers <= 0 {
		workers = 1
	}
	return &TextServiceImpl{loader: ld, analyzer: an, summarizer: sum, cache: cache, log: log, workers: workers}
}

// AnalyzeText returns the statistics for text.
func (s *TextServiceImpl) AnalyzeText(text string) domain.AnalysisResult {
	if s.cache != nil {
		if res, ok := s.cache.GetAnalysis(text); ok {
			s.log.Debug("analysis cache hit")
			return res
		}
	}
	start := time.Now()
	res := s.analyzer.Analyze(text)
	s.log.Debug("analyzed text", "words", res.WordCount, "elapsed", time.Since(start))
	if s.cache != nil {
		s.cache.PutAnalysis(text, res)
	}
	return res
}

// SummarizeText returns the extractive summary for text.
func (s *TextServiceImpl) SummarizeText(text string) string {
	if s.cache != nil {
		if sum, ok := s.cache.GetSummary(text); ok {
			s.log.Debug("summary cache hit")
			return sum
		}
	}
	sum := s.summarizer.Summarize(text)
	if s.cache != nil {
		s.cache.PutSummary(text, sum)
	}
	return sum
}

type target struct {
	path     string
	explicit bool
}

// AnalyzeDocuments loads every file matched by patterns and analyzes them
// concurrently. Reports come back in pattern order. Files matched only by a
// glob are skipped when they are not text; explicitly named files fail the call.
func (s *TextServiceImpl) AnalyzeDocuments(ctx context.Context, patterns []string, withSummary bool) ([]domain.Report, error) {
	targets := expand(patterns)
	if len(targets) == 0 {
		return nil, ErrNoDocuments
	}

	reports := make([]*domain.Report, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, tg := range targets {
		g.Go(func() error {
			doc, err := s.loader.Load(ctx, tg.path)
			if err != nil {
				if !tg.explicit && errors.Is(err, loader.ErrUnsupportedType) {
					s.log.Warn("skipping non-text file", "path", tg.path)
					return nil
				}
				return fmt.Errorf("load %s: %w", tg.path, err)
			}
			rep := domain.Report{Document: doc, Analysis: s.AnalyzeText(doc.Content)}
			if withSummary {
				rep.Summary = s.SummarizeText(doc.Content)
			}
			s.log.Info("analyzed document", "path", doc.Path, "words", rep.Analysis.WordCount)
			reports[i] = &rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			out = append(out, *r)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoDocuments
	}
	return out, nil
}

// expand resolves glob patterns, keeping first-seen order and dropping duplicates.
// A pattern that matches nothing is kept verbatim so the loader reports why.
func expand(patterns []string) []target {
	seen := make(map[string]struct{})
	var out []target
	add := func(p string, explicit bool) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, target{path: p, explicit: explicit})
	}
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil || len(matches) == 0 {
			add(p, true)
			continue
		}
		if len(matches) == 1 && matches[0] == filepath.Clean(p) {
			add(p, true)
			continue
		}
		for _, m := range matches {
			add(m, false)
		}
	}
	return out
}
