package analyzer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

// Normalizer turns raw provider items into canonical article records. The
// keyword lists and thresholds come from configuration so tests can
// substitute deterministic sets. A Normalizer holds no mutable state and is
// safe for concurrent use.
type Normalizer struct {
	threshold int
	keywords  config.SentimentConfig
}

func NewNormalizer(cfg config.AnalyzerConfig) *Normalizer {
	return &Normalizer{
		threshold: cfg.SubstantialThreshold,
		keywords:  cfg.Sentiment,
	}
}

// Normalize processes one raw item into an ArticleRecord. A returned error
// means the item itself is unusable (not an object, or a title of the wrong
// type); the caller records it inline and continues with the next item.
// Field-level problems never surface here, they degrade to defaults inside
// extract.
func (n *Normalizer) Normalize(raw map[string]any, seq int) (model.ArticleRecord, error) {
	if raw == nil {
		return model.ArticleRecord{}, fmt.Errorf("item %d is not an object", seq)
	}

	content := Payload(raw).Content()

	if v, present := content["title"]; present && v != nil {
		if _, ok := v.(string); !ok {
			return model.ArticleRecord{}, fmt.Errorf("item %d has a non-text title (%T)", seq, v)
		}
	}

	b := extract(content, seq)

	record := model.ArticleRecord{
		SequenceNumber: seq,
		Title:          b.title,
		Body:           b.body,
		ContentSources: b.contentSources,
		CharCount:      len(b.body),
		WordCount:      len(strings.Fields(b.body)),
		Substantial:    len(b.body) > n.threshold,
		Publisher:      b.publisher,
		PublisherURL:   b.publisherURL,
		Link:           b.link,
		LinkDomain:     linkDomain(b.link),
		PublishedAt:    b.publishedAt,
		ContentType:    b.contentType,
		Category:       b.category,
		Tags:           b.tags,
		HasThumbnail:   b.hasThumbnail,
		ThumbnailURL:   b.thumbnailURL,
		SentimentTally: n.tally(b.title, b.body),
	}

	return record, nil
}

// tally counts which keywords from each list appear in the lowercased
// title+body. Substring matching is intentional: "rise" hits "rises".
func (n *Normalizer) tally(title, body string) model.SentimentTally {
	text := strings.ToLower(title + " " + body)

	count := func(keywords []string) int {
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		return hits
	}

	return model.SentimentTally{
		Positive: count(n.keywords.Positive),
		Negative: count(n.keywords.Negative),
		Neutral:  count(n.keywords.Neutral),
	}
}

// linkDomain parses the host out of a link. A malformed or empty link yields
// an empty domain, never an error.
func linkDomain(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Host
}
