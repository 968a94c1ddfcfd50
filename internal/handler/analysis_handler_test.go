package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/srinivaswavy/stock-ai-system/internal/analyzer"
	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

type fakeFetcher struct {
	items []map[string]any
	err   error
	calls []string
}

func (f *fakeFetcher) FetchRaw(symbol string, limit int) ([]map[string]any, error) {
	f.calls = append(f.calls, symbol)
	return f.items, f.err
}

func (f *fakeFetcher) Name() string {
	return "Fake Source"
}

type fakeCache struct {
	stored map[string][]byte
	err    error
}

func (f *fakeCache) Get(symbol string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored[symbol], nil
}

func (f *fakeCache) Set(symbol string, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = map[string][]byte{}
	}
	f.stored[symbol] = payload
	return nil
}

type fakeAnalysisStore struct {
	runs     []model.AnalysisRun
	runTotal int
	run      *model.AnalysisRun
	articles []model.ArticleRecord
	err      error
}

func (f *fakeAnalysisStore) GetRuns(limit, offset int) ([]model.AnalysisRun, error) {
	return f.runs, f.err
}

func (f *fakeAnalysisStore) GetRunTotal() (int, error) {
	return f.runTotal, f.err
}

func (f *fakeAnalysisStore) GetRunByID(id string) (*model.AnalysisRun, error) {
	return f.run, f.err
}

func (f *fakeAnalysisStore) GetRunArticles(runID string) ([]model.ArticleRecord, error) {
	return f.articles, f.err
}

func testProcessor() *analyzer.Processor {
	cfg := config.AnalyzerConfig{
		SubstantialThreshold: 100,
		PreviewLength:        300,
		Sentiment: config.SentimentConfig{
			Positive: []string{"beat"},
			Negative: []string{"miss"},
			Neutral:  []string{"hold"},
		},
	}
	return analyzer.NewProcessor(cfg)
}

func newTestRouter(fetcher NewsFetcher, cache AnalysisCache, store AnalysisStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalysisHandler(fetcher, testProcessor(), cache, store)
	r.GET("/analysis/:symbol", h.GetAnalysis)
	r.GET("/compare", h.GetComparison)
	r.GET("/runs", h.GetRuns)
	r.GET("/runs/:id", h.GetRun)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetAnalysis_ReturnsResult(t *testing.T) {
	fetcher := &fakeFetcher{
		items: []map[string]any{
			{"content": map[string]any{"title": "Shares beat estimates", "summary": "Quarterly results."}},
		},
	}
	r := newTestRouter(fetcher, nil, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analysis/aapl?limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.BatchResult
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "AAPL", res.Symbol)
	assert.Equal(t, "Fake Source", res.Source)
	assert.Equal(t, 1, res.TotalProcessed)
	assert.Equal(t, "Shares beat estimates", res.Articles[0].Title)
	assert.Equal(t, 1, res.Articles[0].SentimentTally.Positive)
	assert.Equal(t, []string{"AAPL"}, fetcher.calls)
}

func TestGetAnalysis_UpstreamError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	r := newTestRouter(fetcher, nil, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analysis/AAPL", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetAnalysis_CacheHitSkipsFetch(t *testing.T) {
	cached, _ := json.Marshal(model.BatchResult{Symbol: "AAPL", Source: "Cached"})
	cache := &fakeCache{stored: map[string][]byte{"AAPL": cached}}
	fetcher := &fakeFetcher{}
	r := newTestRouter(fetcher, cache, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analysis/aapl", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.BatchResult
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Cached", res.Source)
	assert.Equal(t, 0, len(fetcher.calls))
}

func TestGetAnalysis_CacheMissStoresResult(t *testing.T) {
	cache := &fakeCache{}
	fetcher := &fakeFetcher{
		items: []map[string]any{
			{"content": map[string]any{"title": "Headline"}},
		},
	}
	r := newTestRouter(fetcher, cache, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analysis/MSFT", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"MSFT"}, fetcher.calls)
	assert.NotEqual(t, nil, cache.stored["MSFT"])
}

func TestGetComparison_RanksSymbols(t *testing.T) {
	fetcher := &fakeFetcher{
		items: []map[string]any{
			{"content": map[string]any{"title": "Headline", "summary": "Some body text here."}},
		},
	}
	r := newTestRouter(fetcher, nil, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/compare?symbols=aapl,msft", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ComparisonResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Methods))
	// identical content volume, ties break to the first label alphabetically
	assert.Equal(t, "AAPL", res.Best)
	assert.Equal(t, []string{"AAPL", "MSFT"}, fetcher.calls)
}

func TestGetComparison_MissingSymbols(t *testing.T) {
	r := newTestRouter(&fakeFetcher{}, nil, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/compare", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRuns_ReturnsRuns(t *testing.T) {
	store := &fakeAnalysisStore{
		runs: []model.AnalysisRun{
			{ID: "run-1", Symbol: "AAPL", Source: "Yahoo Finance", TotalProcessed: 5},
		},
		runTotal: 1,
	}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RunsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Runs))
	assert.Equal(t, "run-1", res.Runs[0].ID)
	assert.Equal(t, "AAPL", res.Runs[0].Symbol)
}

func TestGetRuns_DefaultLimit(t *testing.T) {
	store := &fakeAnalysisStore{runs: []model.AnalysisRun{}}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs", nil)
	r.ServeHTTP(w, req)

	var res RunsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 25, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetRuns_DBError(t *testing.T) {
	store := &fakeAnalysisStore{err: errors.New("DB down")}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRun_Found(t *testing.T) {
	store := &fakeAnalysisStore{
		run: &model.AnalysisRun{ID: "run-1", Symbol: "AAPL"},
		articles: []model.ArticleRecord{
			{SequenceNumber: 1, Title: "Headline"},
		},
	}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs/run-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RunDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "run-1", res.ID)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "Headline", res.Articles[0].Title)
}

func TestGetRun_NotFound(t *testing.T) {
	store := &fakeAnalysisStore{}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestRouter(&fakeFetcher{}, nil, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	store := &fakeAnalysisStore{err: errors.New("DB down")}
	r := newTestRouter(&fakeFetcher{}, nil, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
