package model

import "time"

// AnalysisRun is one persisted batch analysis for a symbol.
type AnalysisRun struct {
	ID               string
	Symbol           string
	Source           string
	TotalAvailable   int
	TotalProcessed   int
	TotalCharacters  int
	TotalWords       int
	UniquePublishers int
	Message          string
	CreatedAt        time.Time
}

// NewsDigest is an LLM-generated briefing over the articles of one run.
type NewsDigest struct {
	ID           int64
	RunID        string
	Symbol       string
	Paragraph    string
	Bullets      []string
	ArticleCount int
	ModelUsed    string
	CreatedAt    time.Time
}
