package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srinivaswavy/stock-ai-system/internal/analyzer"
	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

// NewsFetcher is the upstream provider as the handler sees it.
type NewsFetcher interface {
	FetchRaw(symbol string, limit int) ([]map[string]any, error)
	Name() string
}

// AnalysisCache is an optional result cache. A nil cache disables caching.
type AnalysisCache interface {
	Get(symbol string) ([]byte, error)
	Set(symbol string, payload []byte) error
}

type AnalysisStore interface {
	GetRuns(limit, offset int) ([]model.AnalysisRun, error)
	GetRunTotal() (int, error)
	GetRunByID(id string) (*model.AnalysisRun, error)
	GetRunArticles(runID string) ([]model.ArticleRecord, error)
}

type AnalysisHandler struct {
	fetcher    NewsFetcher
	processor  *analyzer.Processor
	cache      AnalysisCache
	repository AnalysisStore
}

func NewAnalysisHandler(fetcher NewsFetcher, processor *analyzer.Processor, cache AnalysisCache, repository AnalysisStore) *AnalysisHandler {
	return &AnalysisHandler{
		fetcher:    fetcher,
		processor:  processor,
		cache:      cache,
		repository: repository,
	}
}

// GetAnalysis fetches and analyzes news for one symbol on demand.
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	limit := getQueryLimit(c)

	if h.cache != nil {
		if data, err := h.cache.Get(symbol); err != nil {
			slog.Warn("cache read failed", "symbol", symbol, "error", err)
		} else if data != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	raw, err := h.fetcher.FetchRaw(symbol, limit)
	if err != nil {
		slog.Error("error fetching news", "symbol", symbol, "source", h.fetcher.Name(), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
		return
	}

	result := h.processor.Process(symbol, raw, limit)
	result.Source = h.fetcher.Name()

	if h.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := h.cache.Set(symbol, data); err != nil {
				slog.Warn("cache write failed", "symbol", symbol, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetComparison analyzes several symbols and ranks them by content volume.
func (h *AnalysisHandler) GetComparison(c *gin.Context) {
	param := c.Query("symbols")
	if param == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols query parameter is required"})
		return
	}

	limit := getQueryLimit(c)

	batches := make(map[string]model.BatchResult)
	for _, s := range strings.Split(param, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(s))
		if symbol == "" {
			continue
		}

		raw, err := h.fetcher.FetchRaw(symbol, limit)
		if err != nil {
			slog.Error("error fetching news", "symbol", symbol, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
			return
		}
		batches[symbol] = h.processor.Process(symbol, raw, limit)
	}

	if len(batches) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols query parameter is required"})
		return
	}

	cmp := analyzer.Compare(batches)
	c.JSON(http.StatusOK, ComparisonResponse{Methods: cmp.Methods, Best: cmp.Best})
}

func (h *AnalysisHandler) GetRuns(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	total, err := h.repository.GetRunTotal()
	if err != nil {
		slog.Error("error fetching run total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	runs, err := h.repository.GetRuns(limit, offset)
	if err != nil {
		slog.Error("error fetching runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := RunsResponse{
		Runs:   []RunResponse{},
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, run := range runs {
		res.Runs = append(res.Runs, toRunResponse(run))
	}

	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) GetRun(c *gin.Context) {
	id := c.Param("id")

	run, err := h.repository.GetRunByID(id)
	if err != nil {
		slog.Error("error fetching run", "error", err, "run_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	articles, err := h.repository.GetRunArticles(id)
	if err != nil {
		slog.Error("error fetching run articles", "error", err, "run_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if articles == nil {
		articles = []model.ArticleRecord{}
	}

	c.JSON(http.StatusOK, RunDetailResponse{
		RunResponse: toRunResponse(*run),
		Articles:    articles,
	})
}

func (h *AnalysisHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetRunTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toRunResponse(run model.AnalysisRun) RunResponse {
	return RunResponse{
		ID:               run.ID,
		Symbol:           run.Symbol,
		Source:           run.Source,
		TotalAvailable:   run.TotalAvailable,
		TotalProcessed:   run.TotalProcessed,
		TotalCharacters:  run.TotalCharacters,
		TotalWords:       run.TotalWords,
		UniquePublishers: run.UniquePublishers,
		Message:          run.Message,
		CreatedAt:        run.CreatedAt.Format(time.RFC3339),
	}
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 25
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
