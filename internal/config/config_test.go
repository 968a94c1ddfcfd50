package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(thresholdEnv, "")
	t.Setenv(yahooURLEnv, "")

	cfg := Load()

	assert.Equal(t, 100, cfg.Analyzer.SubstantialThreshold)
	assert.Equal(t, 300, cfg.Analyzer.PreviewLength)
	assert.Equal(t, 10, cfg.Analyzer.TopArticles)
	assert.Equal(t, "https://query1.finance.yahoo.com/v1/finance/search", cfg.Sources.YahooNewsURL)
	assert.Equal(t, true, len(cfg.Analyzer.Sentiment.Positive) > 0)
}

func TestLoad_PartialYAMLBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	yaml := "analyzer:\n  substantialThreshold: 250\n  sentiment:\n    positive: [\"surge\"]\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(thresholdEnv, "")
	t.Setenv(yahooURLEnv, "")

	cfg := Load()

	assert.Equal(t, 250, cfg.Analyzer.SubstantialThreshold)
	assert.Equal(t, []string{"surge"}, cfg.Analyzer.Sentiment.Positive)
	// untouched fields fall back to defaults
	assert.Equal(t, 300, cfg.Analyzer.PreviewLength)
	assert.Equal(t, true, len(cfg.Analyzer.Sentiment.Negative) > 0)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(thresholdEnv, "500")
	t.Setenv(yahooURLEnv, "http://localhost:9999/search")

	cfg := Load()

	assert.Equal(t, 500, cfg.Analyzer.SubstantialThreshold)
	assert.Equal(t, "http://localhost:9999/search", cfg.Sources.YahooNewsURL)
}

func TestLoad_BadYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("analyzer: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(thresholdEnv, "")
	t.Setenv(yahooURLEnv, "")

	cfg := Load()

	assert.Equal(t, 100, cfg.Analyzer.SubstantialThreshold)
}
