package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

type DigestStore interface {
	GetLatestDigest() (*model.NewsDigest, error)
	GetDigests(limit, offset int) ([]model.NewsDigest, error)
}

type DigestHandler struct {
	repository DigestStore
}

func NewDigestHandler(repository DigestStore) *DigestHandler {
	return &DigestHandler{repository: repository}
}

func (h *DigestHandler) GetLatestDigest(c *gin.Context) {
	digest, err := h.repository.GetLatestDigest()
	if err != nil {
		slog.Error("error fetching latest digest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if digest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No digest available"})
		return
	}

	c.JSON(http.StatusOK, toDigestResponse(*digest))
}

func (h *DigestHandler) GetDigests(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	digests, err := h.repository.GetDigests(limit, offset)
	if err != nil {
		slog.Error("error fetching digests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := DigestsResponse{
		Digests: []DigestResponse{},
		Limit:   limit,
		Offset:  offset,
	}
	for _, d := range digests {
		res.Digests = append(res.Digests, toDigestResponse(d))
	}

	c.JSON(http.StatusOK, res)
}

func toDigestResponse(d model.NewsDigest) DigestResponse {
	return DigestResponse{
		ID:           d.ID,
		RunID:        d.RunID,
		Symbol:       d.Symbol,
		Paragraph:    d.Paragraph,
		Bullets:      d.Bullets,
		ArticleCount: d.ArticleCount,
		ModelUsed:    d.ModelUsed,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}
