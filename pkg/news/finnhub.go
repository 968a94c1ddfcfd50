package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// companyNewsWindow is how far back the Finnhub company-news query reaches.
const companyNewsWindow = 30 * 24 * time.Hour

// FinnhubClient adapts Finnhub company news into raw payload items. Finnhub
// responses are typed, so the adapter rebuilds the provider mapping shape
// the analyzer expects; fields Finnhub does not send are simply absent.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) FetchRaw(symbol string, limit int) ([]map[string]any, error) {
	now := time.Now()
	res, _, err := c.client.CompanyNews(context.Background()).
		Symbol(symbol).
		From(now.Add(-companyNewsWindow).Format("2006-01-02")).
		To(now.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	for _, n := range res {
		if limit >= 0 && len(items) >= limit {
			break
		}

		item := map[string]any{}

		if n.Headline != nil {
			item["title"] = *n.Headline
		}
		if n.Summary != nil {
			item["summary"] = *n.Summary
		}
		if n.Source != nil {
			item["provider"] = map[string]any{"displayName": *n.Source}
		}
		if n.Url != nil {
			item["canonicalUrl"] = *n.Url
		}
		if n.Datetime != nil {
			item["pubDate"] = *n.Datetime
		}
		if n.Category != nil {
			item["category"] = *n.Category
		}
		if n.Image != nil && *n.Image != "" {
			item["thumbnail"] = map[string]any{"url": *n.Image}
		}

		sanitizeText(item)
		items = append(items, item)
	}

	return items, nil
}
