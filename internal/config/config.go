package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnalyzerConfig tunes the statistics.
type AnalyzerConfig struct {
	TopWords       int `yaml:"top_words"`
	MinWordLength  int `yaml:"min_word_length"`
	WordsPerMinute int `yaml:"words_per_minute"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type             string `yaml:"type"`
	MaxSentences     int    `yaml:"max_sentences"`
	MinSentenceWords int    `yaml:"min_sentence_words"`
}

// LoaderConfig limits what files are accepted.
type LoaderConfig struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

// CacheConfig sizes the result cache. Size 0 disables it.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// ServiceConfig configures batch processing.
type ServiceConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Analyzer   AnalyzerConfig   `yaml:"analyzer"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Loader     LoaderConfig     `yaml:"loader"`
	Cache      CacheConfig      `yaml:"cache"`
	Service    ServiceConfig    `yaml:"service"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textstat/config.yaml.
// If neither exists, it writes defaults to ~/.config/textstat/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns a fresh copy of the built-in configuration.
func Default() *AppConfig {
	return defaultConfig()
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textstat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Analyzer:   AnalyzerConfig{TopWords: 8, MinWordLength: 2, WordsPerMinute: 200},
		Summarizer: SummarizerConfig{Type: "lead", MaxSentences: 3, MinSentenceWords: 3},
		Loader:     LoaderConfig{MaxBytes: 5 << 20},
		Cache:      CacheConfig{Size: 128},
		Service:    ServiceConfig{Workers: 4},
		Log:        LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Analyzer.TopWords <= 0 {
		cfg.Analyzer.TopWords = 8
	}
	if cfg.Analyzer.MinWordLength < 0 {
		cfg.Analyzer.MinWordLength = 2
	}
	if cfg.Analyzer.WordsPerMinute <= 0 {
		cfg.Analyzer.WordsPerMinute = 200
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "lead"
	}
	if cfg.Summarizer.MaxSentences <= 0 {
		cfg.Summarizer.MaxSentences = 3
	}
	if cfg.Summarizer.MinSentenceWords < 0 {
		cfg.Summarizer.MinSentenceWords = 3
	}
	if cfg.Loader.MaxBytes <= 0 {
		cfg.Loader.MaxBytes = 5 << 20
	}
	if cfg.Cache.Size < 0 {
		cfg.Cache.Size = 0
	}
	if cfg.Service.Workers <= 0 {
		cfg.Service.Workers = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// applyEnv lets the environment (including a loaded .env file) override the log level.
func applyEnv(cfg *AppConfig) {
	if lvl := strings.TrimSpace(os.Getenv("TEXTSTAT_LOG_LEVEL")); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}
}
