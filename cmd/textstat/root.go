package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textstat/internal/analyzer"
	"textstat/internal/cache"
	"textstat/internal/config"
	"textstat/internal/domain"
	"textstat/internal/loader"
	"textstat/internal/logger"
	"textstat/internal/service"
	"textstat/internal/summarizer"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// app holds the assembled components for one command invocation.
type app struct {
	cfg     *config.AppConfig
	log     logger.Logger
	loader  *loader.FileLoader
	service *service.TextServiceImpl
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "textstat",
		Short: "Text statistics and extractive summaries",
		Long: `textstat computes descriptive statistics for plain text (character, word and
paragraph counts, longest word, most frequent words, reading time) and a short
extractive summary.

Text comes from files, globs, or standard input.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (default ./config.yaml or ~/.config/textstat/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newSummarizeCmd(opts))
	cmd.AddCommand(newTUICmd(opts))
	return cmd
}

func buildApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	var cfg *config.AppConfig
	var err error
	if opts.configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(opts.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON, Output: cmd.ErrOrStderr()})

	// Assemble components
	an := analyzer.New(analyzer.Options{
		TopWords:       cfg.Analyzer.TopWords,
		MinWordLength:  cfg.Analyzer.MinWordLength,
		WordsPerMinute: cfg.Analyzer.WordsPerMinute,
	})

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "lead", "":
		sum = summarizer.NewLeadSummarizer(cfg.Summarizer.MaxSentences, cfg.Summarizer.MinSentenceWords)
	case "frequency":
		sum = summarizer.NewFrequencySummarizer(cfg.Summarizer.MaxSentences, cfg.Summarizer.MinSentenceWords)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	rc, err := cache.New(cfg.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	ld := loader.New(cfg.Loader.MaxBytes)
	svc := service.NewTextService(ld, an, sum, rc, log, cfg.Service.Workers)
	log.Debug("components ready", "summarizer", cfg.Summarizer.Type, "cache", cfg.Cache.Size, "workers", cfg.Service.Workers)
	return &app{cfg: cfg, log: log, loader: ld, service: svc}, nil
}

// readsStdin reports whether args ask for standard input.
func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// collect builds reports from stdin or from the given file patterns.
func (a *app) collect(cmd *cobra.Command, args []string, withSummary bool) ([]domain.Report, error) {
	ctx := cmd.Context()
	if !readsStdin(args) {
		return a.service.AnalyzeDocuments(ctx, args, withSummary)
	}
	doc, err := a.loader.LoadReader(ctx, "-", cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	rep := domain.Report{Analysis: a.service.AnalyzeText(doc.Content)}
	if withSummary {
		rep.Summary = a.service.SummarizeText(doc.Content)
	}
	return []domain.Report{rep}, nil
}
