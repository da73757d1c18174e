package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Features.VocabularySize != 500 {
		t.Errorf("expected VocabularySize=500, got %d", cfg.Features.VocabularySize)
	}
	if cfg.Features.Weighting != "tf-idf" {
		t.Errorf("expected Weighting=tf-idf, got %s", cfg.Features.Weighting)
	}
	if !cfg.Normalize.Stemming {
		t.Error("expected stemming to be enabled by default")
	}
	if cfg.Normalize.Language != "english" {
		t.Errorf("expected Language=english, got %s", cfg.Normalize.Language)
	}
	if cfg.Topic.Dim != 0 {
		t.Errorf("expected topic projection to be disabled, got dim %d", cfg.Topic.Dim)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textfeat.yaml")

	content := `
normalize:
  stemming: false
  extra_stopwords: ["said", "would"]
features:
  vocabulary_size: 100
  weighting: relative
topic:
  dim: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Normalize.Stemming {
		t.Errorf("expected Stemming=false, got %v", cfg.Normalize.Stemming)
	}
	if len(cfg.Normalize.ExtraStopwords) != 2 {
		t.Errorf("expected 2 extra stopwords, got %v", cfg.Normalize.ExtraStopwords)
	}
	if cfg.Features.VocabularySize != 100 {
		t.Errorf("expected VocabularySize=100, got %d", cfg.Features.VocabularySize)
	}
	if cfg.Features.Weighting != "relative" {
		t.Errorf("expected Weighting=relative, got %s", cfg.Features.Weighting)
	}
	if cfg.Topic.Dim != 5 {
		t.Errorf("expected Dim=5, got %d", cfg.Topic.Dim)
	}
	// untouched sections keep their defaults
	if cfg.Features.TopN != 20 {
		t.Errorf("expected TopN=20, got %d", cfg.Features.TopN)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "textfeat.yaml")
	if err := os.WriteFile(configPath, []byte("features: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureDataDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".textfeat", "config.yaml")

	content := `
features:
  top_n: 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Features.TopN != 7 {
		t.Errorf("expected TopN=7, got %d", cfg.Features.TopN)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textfeat.yaml")

	cfg := DefaultConfig()
	cfg.Topic.Dim = 12
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Topic.Dim != 12 {
		t.Errorf("expected Dim=12, got %d", loaded.Topic.Dim)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"weighting", func(c *Config) { c.Features.Weighting = "bm25" }},
		{"vocabulary", func(c *Config) { c.Features.VocabularySize = -1 }},
		{"topic", func(c *Config) { c.Topic.Dim = -2 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestCorpusDBPath(t *testing.T) {
	path := CorpusDBPath("/home/user/corpus")
	expected := filepath.Join("/home/user/corpus", ".textfeat", "corpus.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
