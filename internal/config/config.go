package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "ANALYZER_CONFIG"
	thresholdEnv  = "SUBSTANTIAL_THRESHOLD"
	yahooURLEnv   = "YAHOO_NEWS_URL"
)

// Config holds the tunable parts of the analysis pipeline. Everything has a
// working default so the binaries run without any file present.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Sources  SourceConfig   `yaml:"sources"`
}

// AnalyzerConfig parameterizes normalization and reporting.
type AnalyzerConfig struct {
	// SubstantialThreshold is the char count an article body must exceed
	// to be flagged as substantial.
	SubstantialThreshold int `yaml:"substantialThreshold"`
	// PreviewLength caps the raw-payload preview stored on error records.
	PreviewLength int `yaml:"previewLength"`
	// TopArticles is how many ranked articles the text report shows.
	TopArticles int             `yaml:"topArticles"`
	Sentiment   SentimentConfig `yaml:"sentiment"`
}

// SentimentConfig carries the keyword lists used for the naive tally.
// Matching is lowercase substring, so "rise" also hits "rises".
type SentimentConfig struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Neutral  []string `yaml:"neutral"`
}

// SourceConfig describes the upstream news providers.
type SourceConfig struct {
	YahooNewsURL string `yaml:"yahooNewsUrl"`
}

func defaultConfig() Config {
	return Config{
		Analyzer: AnalyzerConfig{
			SubstantialThreshold: 100,
			PreviewLength:        300,
			TopArticles:          10,
			Sentiment: SentimentConfig{
				Positive: []string{"rise", "gain", "profit", "growth", "buy", "bullish", "upgrade", "strong"},
				Negative: []string{"fall", "loss", "decline", "drop", "sell", "bearish", "downgrade", "weak"},
				Neutral:  []string{"stable", "holds", "maintains", "expects", "analyst", "report"},
			},
		},
		Sources: SourceConfig{
			YahooNewsURL: "https://query1.finance.yahoo.com/v1/finance/search",
		},
	}
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(thresholdEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Analyzer.SubstantialThreshold = n
		}
	}
	if v := os.Getenv(yahooURLEnv); v != "" {
		c.Sources.YahooNewsURL = v
	}
}

// fillDefaults backfills anything a partial YAML file left zeroed.
func (c *Config) fillDefaults() {
	def := defaultConfig()
	if c.Analyzer.SubstantialThreshold <= 0 {
		c.Analyzer.SubstantialThreshold = def.Analyzer.SubstantialThreshold
	}
	if c.Analyzer.PreviewLength <= 0 {
		c.Analyzer.PreviewLength = def.Analyzer.PreviewLength
	}
	if c.Analyzer.TopArticles <= 0 {
		c.Analyzer.TopArticles = def.Analyzer.TopArticles
	}
	s := &c.Analyzer.Sentiment
	if len(s.Positive) == 0 {
		s.Positive = def.Analyzer.Sentiment.Positive
	}
	if len(s.Negative) == 0 {
		s.Negative = def.Analyzer.Sentiment.Negative
	}
	if len(s.Neutral) == 0 {
		s.Neutral = def.Analyzer.Sentiment.Neutral
	}
	if c.Sources.YahooNewsURL == "" {
		c.Sources.YahooNewsURL = def.Sources.YahooNewsURL
	}
}
