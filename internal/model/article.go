package model

// SentimentTally holds naive keyword-hit counts for one article. It is not a
// trained classifier; each field counts substring matches against a fixed
// keyword list.
type SentimentTally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the combined number of keyword hits.
func (t SentimentTally) Total() int {
	return t.Positive + t.Negative + t.Neutral
}

// ArticleRecord is the canonical article produced from one raw provider
// payload. Records are created once per processed item and never mutated
// afterwards. When Error is non-empty the record is terminal: only
// SequenceNumber, Error and RawPreview carry data.
type ArticleRecord struct {
	SequenceNumber int            `json:"sequence_number"`
	Title          string         `json:"title,omitempty"`
	Body           string         `json:"body,omitempty"`
	ContentSources []string       `json:"content_sources,omitempty"`
	CharCount      int            `json:"char_count"`
	WordCount      int            `json:"word_count"`
	Substantial    bool           `json:"substantial"`
	Publisher      string         `json:"publisher,omitempty"`
	PublisherURL   string         `json:"publisher_url,omitempty"`
	Link           string         `json:"link,omitempty"`
	LinkDomain     string         `json:"link_domain,omitempty"`
	PublishedAt    string         `json:"published_at,omitempty"`
	ContentType    string         `json:"content_type,omitempty"`
	Category       string         `json:"category,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	HasThumbnail   bool           `json:"has_thumbnail"`
	ThumbnailURL   string         `json:"thumbnail_url,omitempty"`
	SentimentTally SentimentTally `json:"sentiment_tally"`
	Error          string         `json:"error,omitempty"`
	RawPreview     string         `json:"raw_preview,omitempty"`
}

// IsError reports whether the record is an inline processing failure.
func (a ArticleRecord) IsError() bool {
	return a.Error != ""
}

// Aggregate holds batch-level statistics computed over non-error records.
type Aggregate struct {
	TotalCharacters     int            `json:"total_characters"`
	TotalWords          int            `json:"total_words"`
	ArticlesWithContent int            `json:"articles_with_content"`
	SubstantialArticles int            `json:"substantial_articles"`
	UniquePublishers    int            `json:"unique_publishers"`
	Publishers          []string       `json:"publishers,omitempty"`
	ContentTypes        map[string]int `json:"content_types,omitempty"`
	LinkDomains         []string       `json:"link_domains,omitempty"`
	EarliestPublished   string         `json:"earliest_published,omitempty"`
	LatestPublished     string         `json:"latest_published,omitempty"`
}

// QualityMetrics are derived ratios over a batch, always division-safe.
type QualityMetrics struct {
	CoverageRatio    float64 `json:"coverage_ratio"`
	AvgContentLength float64 `json:"avg_content_length"`
	AvgWordCount     float64 `json:"avg_word_count"`
	SubstantialRatio float64 `json:"substantial_ratio"`
}

// BatchResult is the outcome of processing one retrieval call. An upstream
// returning nothing yields a zeroed result with Message set, never an error.
type BatchResult struct {
	Symbol         string          `json:"symbol"`
	Source         string          `json:"source,omitempty"`
	Timestamp      string          `json:"timestamp"`
	TotalAvailable int             `json:"total_available"`
	TotalProcessed int             `json:"total_processed"`
	Message        string          `json:"message,omitempty"`
	Articles       []ArticleRecord `json:"articles"`
	Totals         Aggregate       `json:"totals"`
	Quality        QualityMetrics  `json:"quality"`
}

// MethodStats summarizes one labeled batch inside a comparison.
type MethodStats struct {
	Articles           int     `json:"articles"`
	TotalCharacters    int     `json:"total_characters"`
	AvgCharsPerArticle float64 `json:"avg_chars_per_article"`
}

// Comparison ranks labeled batches by total content volume.
type Comparison struct {
	Methods map[string]MethodStats `json:"methods"`
	Best    string                 `json:"best"`
}
