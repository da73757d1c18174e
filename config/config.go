package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for textfeat.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Features  FeaturesConfig  `yaml:"features"`
	Topic     TopicConfig     `yaml:"topic"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CorpusConfig controls how a directory tree is imported as a corpus.
// Every file below <root>/<category>/ becomes one document of category.
type CorpusConfig struct {
	Includes        []string `yaml:"includes"`
	Excludes        []string `yaml:"excludes"`
	KeepPunctuation bool     `yaml:"keep_punctuation"`
	MinWords        int      `yaml:"min_words"` // skip documents with fewer tokens (0 = keep all)
}

// NormalizeConfig configures the word list normalizer.
type NormalizeConfig struct {
	Stemming       bool     `yaml:"stemming"`
	Language       string   `yaml:"language"`  // snowball stemmer language
	Stopwords      string   `yaml:"stopwords"` // stopword file; empty uses the snowball English list
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// FeaturesConfig configures vocabulary and term weighting.
type FeaturesConfig struct {
	VocabularySize int    `yaml:"vocabulary_size"`
	Weighting      string `yaml:"weighting"` // "absolute", "relative", "tf-idf"
	TopN           int    `yaml:"top_n"`
	TopTerms       int    `yaml:"top_terms"`
}

// TopicConfig configures the topic space projection.
type TopicConfig struct {
	Dim int `yaml:"dim"` // 0 disables the projection
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Includes:        []string{"**/*"},
			Excludes:        []string{"**/.*", "**/.*/**", "**/README*", "**/*.yaml"},
			KeepPunctuation: true,
			MinWords:        0,
		},
		Normalize: NormalizeConfig{
			Stemming: true,
			Language: "english",
		},
		Features: FeaturesConfig{
			VocabularySize: 500,
			Weighting:      "tf-idf",
			TopN:           20,
			TopTerms:       10,
		},
		Topic: TopicConfig{
			Dim: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Features.Weighting) {
	case "", "absolute", "relative", "tf-idf", "tfidf":
	default:
		return fmt.Errorf("features.weighting: unsupported value %q", c.Features.Weighting)
	}
	if c.Features.VocabularySize < 0 {
		return fmt.Errorf("features.vocabulary_size must not be negative, got %d", c.Features.VocabularySize)
	}
	if c.Topic.Dim < 0 {
		return fmt.Errorf("topic.dim must not be negative, got %d", c.Topic.Dim)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textfeat.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textfeat.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textfeat", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CorpusDBPath returns the path to the corpus database.
func CorpusDBPath(dir string) string {
	return filepath.Join(dir, ".textfeat", "corpus.db")
}

// EnsureDataDir ensures the .textfeat directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textfeat"), 0755)
}
