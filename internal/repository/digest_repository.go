package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

type DigestRepository struct {
	db *sql.DB
}

func NewDigestRepository(db *sql.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

func (r *DigestRepository) SaveDigest(digest *model.NewsDigest) error {
	bullets, err := json.Marshal(digest.Bullets)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO news_digest(run_id, symbol, paragraph, bullets, article_count, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, digest.RunID, digest.Symbol, digest.Paragraph, bullets,
		digest.ArticleCount, digest.ModelUsed).Scan(&digest.ID)
}

func (r *DigestRepository) GetLatestDigest() (*model.NewsDigest, error) {
	var d model.NewsDigest
	var bulletsJSON []byte
	err := r.db.QueryRow(`
		SELECT id, run_id, symbol, paragraph, bullets, article_count, model_used, created_at
		FROM news_digest
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&d.ID, &d.RunID, &d.Symbol, &d.Paragraph, &bulletsJSON,
		&d.ArticleCount, &d.ModelUsed, &d.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(bulletsJSON, &d.Bullets); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DigestRepository) GetDigests(limit, offset int) ([]model.NewsDigest, error) {
	rows, err := r.db.Query(`
		SELECT id, run_id, symbol, paragraph, bullets, article_count, model_used, created_at
		FROM news_digest
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var digests []model.NewsDigest
	for rows.Next() {
		var d model.NewsDigest
		var bulletsJSON []byte
		err := rows.Scan(&d.ID, &d.RunID, &d.Symbol, &d.Paragraph, &bulletsJSON,
			&d.ArticleCount, &d.ModelUsed, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(bulletsJSON, &d.Bullets); err != nil {
			return nil, err
		}
		digests = append(digests, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return digests, nil
}
