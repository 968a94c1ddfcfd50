package handler

import "github.com/srinivaswavy/stock-ai-system/internal/model"

type RunResponse struct {
	ID               string `json:"id"`
	Symbol           string `json:"symbol"`
	Source           string `json:"source"`
	TotalAvailable   int    `json:"total_available"`
	TotalProcessed   int    `json:"total_processed"`
	TotalCharacters  int    `json:"total_characters"`
	TotalWords       int    `json:"total_words"`
	UniquePublishers int    `json:"unique_publishers"`
	Message          string `json:"message,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type RunsResponse struct {
	Runs   []RunResponse `json:"runs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type RunDetailResponse struct {
	RunResponse
	Articles []model.ArticleRecord `json:"articles"`
}

type ComparisonResponse struct {
	Methods map[string]model.MethodStats `json:"methods"`
	Best    string                       `json:"best"`
}

type DigestResponse struct {
	ID           int64    `json:"id"`
	RunID        string   `json:"run_id"`
	Symbol       string   `json:"symbol"`
	Paragraph    string   `json:"paragraph"`
	Bullets      []string `json:"bullets"`
	ArticleCount int      `json:"article_count"`
	ModelUsed    string   `json:"model_used"`
	CreatedAt    string   `json:"created_at"`
}

type DigestsResponse struct {
	Digests []DigestResponse `json:"digests"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}
