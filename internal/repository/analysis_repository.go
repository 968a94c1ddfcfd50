package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// SaveRun persists a batch result and all of its article records in one
// transaction and returns the generated run id.
func (r *AnalysisRepository) SaveRun(res *model.BatchResult, source string) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()

	_, err = tx.Exec(`
		INSERT INTO analysis_run(id, symbol, source, total_available, total_processed,
			total_characters, total_words, unique_publishers, message)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, res.Symbol, source, res.TotalAvailable, res.TotalProcessed,
		res.Totals.TotalCharacters, res.Totals.TotalWords, res.Totals.UniquePublishers, res.Message)
	if err != nil {
		return "", err
	}

	for _, a := range res.Articles {
		_, err = tx.Exec(`
			INSERT INTO analysis_article(run_id, sequence_number, title, body,
				char_count, word_count, substantial, publisher, link, link_domain,
				published_at, content_type, category, tags, has_thumbnail,
				thumbnail_url, positive_hits, negative_hits, neutral_hits,
				error_message, raw_preview)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		`, id, a.SequenceNumber, a.Title, a.Body,
			a.CharCount, a.WordCount, a.Substantial, a.Publisher, a.Link, a.LinkDomain,
			a.PublishedAt, a.ContentType, a.Category, pq.Array(a.Tags), a.HasThumbnail,
			a.ThumbnailURL, a.SentimentTally.Positive, a.SentimentTally.Negative,
			a.SentimentTally.Neutral, a.Error, a.RawPreview)
		if err != nil {
			return "", err
		}
	}

	return id, tx.Commit()
}

func (r *AnalysisRepository) GetRuns(limit, offset int) ([]model.AnalysisRun, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, source, total_available, total_processed,
			total_characters, total_words, unique_publishers, message, created_at
		FROM analysis_run
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.AnalysisRun
	for rows.Next() {
		var run model.AnalysisRun
		err := rows.Scan(&run.ID, &run.Symbol, &run.Source, &run.TotalAvailable,
			&run.TotalProcessed, &run.TotalCharacters, &run.TotalWords,
			&run.UniquePublishers, &run.Message, &run.CreatedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (r *AnalysisRepository) GetRunTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_run`).Scan(&total)
	return total, err
}

func (r *AnalysisRepository) GetRunByID(id string) (*model.AnalysisRun, error) {
	var run model.AnalysisRun
	err := r.db.QueryRow(`
		SELECT id, symbol, source, total_available, total_processed,
			total_characters, total_words, unique_publishers, message, created_at
		FROM analysis_run
		WHERE id = $1
	`, id).Scan(&run.ID, &run.Symbol, &run.Source, &run.TotalAvailable,
		&run.TotalProcessed, &run.TotalCharacters, &run.TotalWords,
		&run.UniquePublishers, &run.Message, &run.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &run, nil
}

// GetLatestRun returns the most recent run, optionally filtered by symbol.
// An empty symbol matches any run. No run at all yields (nil, nil).
func (r *AnalysisRepository) GetLatestRun(symbol string) (*model.AnalysisRun, error) {
	var run model.AnalysisRun
	err := r.db.QueryRow(`
		SELECT id, symbol, source, total_available, total_processed,
			total_characters, total_words, unique_publishers, message, created_at
		FROM analysis_run
		WHERE $1 = '' OR symbol = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, symbol).Scan(&run.ID, &run.Symbol, &run.Source, &run.TotalAvailable,
		&run.TotalProcessed, &run.TotalCharacters, &run.TotalWords,
		&run.UniquePublishers, &run.Message, &run.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &run, nil
}

func (r *AnalysisRepository) GetRunArticles(runID string) ([]model.ArticleRecord, error) {
	rows, err := r.db.Query(`
		SELECT sequence_number, title, body, char_count, word_count, substantial,
			publisher, link, link_domain, published_at, content_type, category,
			tags, has_thumbnail, thumbnail_url, positive_hits, negative_hits,
			neutral_hits, error_message, raw_preview
		FROM analysis_article
		WHERE run_id = $1
		ORDER BY sequence_number ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.ArticleRecord
	for rows.Next() {
		var a model.ArticleRecord
		err := rows.Scan(&a.SequenceNumber, &a.Title, &a.Body, &a.CharCount,
			&a.WordCount, &a.Substantial, &a.Publisher, &a.Link, &a.LinkDomain,
			&a.PublishedAt, &a.ContentType, &a.Category, pq.Array(&a.Tags),
			&a.HasThumbnail, &a.ThumbnailURL, &a.SentimentTally.Positive,
			&a.SentimentTally.Negative, &a.SentimentTally.Neutral,
			&a.Error, &a.RawPreview)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
