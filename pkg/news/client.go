package news

// RawClient fetches provider-shaped news items for a ticker symbol. Items
// come back exactly as the provider shapes them, nested envelopes and all;
// normalization into article records happens downstream in the analyzer.
type RawClient interface {
	FetchRaw(symbol string, limit int) ([]map[string]any, error)
	Name() string
}
