package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// YahooClient pulls ticker news from the Yahoo Finance search endpoint.
// Items arrive with the article nested under a "content" envelope.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewYahooClient(baseURL string) *YahooClient {
	return &YahooClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *YahooClient) Name() string {
	return "Yahoo Finance"
}

func (c *YahooClient) FetchRaw(symbol string, limit int) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("newsCount", strconv.Itoa(limit))

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo fetch: unexpected status %d", resp.StatusCode)
	}

	var raw struct {
		News []map[string]any `json:"news"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	for _, item := range raw.News {
		sanitizeText(item)
	}

	return raw.News, nil
}
