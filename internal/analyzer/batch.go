package analyzer

import (
	"sort"
	"time"

	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

// Processor runs the per-item normalizer over a bounded raw list and
// aggregates the results. It is a pure, synchronous fold: no shared state,
// safe to call from concurrent workers.
type Processor struct {
	normalizer *Normalizer
	preview    int
}

func NewProcessor(cfg config.AnalyzerConfig) *Processor {
	return &Processor{
		normalizer: NewNormalizer(cfg),
		preview:    cfg.PreviewLength,
	}
}

// Process truncates raw to at most limit items, normalizes each retained
// item in input order and computes the batch aggregate. A malformed item
// becomes an inline error record; it never aborts the batch. A nil or empty
// raw list yields a zeroed result with an explanatory message, not an error.
func (p *Processor) Process(symbol string, raw []map[string]any, limit int) model.BatchResult {
	result := model.BatchResult{
		Symbol:    symbol,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Articles:  []model.ArticleRecord{},
	}

	if len(raw) == 0 {
		result.Message = "no news available"
		return result
	}

	result.TotalAvailable = len(raw)

	if limit < 0 {
		limit = 0
	}
	if len(raw) > limit {
		raw = raw[:limit]
	}

	for i, item := range raw {
		seq := i + 1
		record, err := p.normalizer.Normalize(item, seq)
		if err != nil {
			record = model.ArticleRecord{
				SequenceNumber: seq,
				Error:          err.Error(),
				RawPreview:     preview(item, p.preview),
			}
		}
		result.Articles = append(result.Articles, record)
	}

	result.TotalProcessed = len(result.Articles)
	result.Totals = aggregate(result.Articles)
	result.Quality = quality(result.Articles, result.Totals)

	return result
}

// aggregate computes batch statistics over non-error records only.
func aggregate(articles []model.ArticleRecord) model.Aggregate {
	agg := model.Aggregate{}

	publishers := map[string]bool{}
	domains := map[string]bool{}
	contentTypes := map[string]int{}
	var earliest, latest time.Time

	for _, a := range articles {
		if a.IsError() {
			continue
		}

		agg.TotalCharacters += a.CharCount
		agg.TotalWords += a.WordCount
		if a.CharCount > 0 {
			agg.ArticlesWithContent++
		}
		if a.Substantial {
			agg.SubstantialArticles++
		}

		publishers[a.Publisher] = true
		contentTypes[a.ContentType]++
		if a.LinkDomain != "" {
			domains[a.LinkDomain] = true
		}

		if t, ok := parsePublished(a.PublishedAt); ok {
			if earliest.IsZero() || t.Before(earliest) {
				earliest = t
			}
			if latest.IsZero() || t.After(latest) {
				latest = t
			}
		}
	}

	agg.UniquePublishers = len(publishers)
	agg.Publishers = sortedKeys(publishers)
	agg.LinkDomains = sortedKeys(domains)
	if len(contentTypes) > 0 {
		agg.ContentTypes = contentTypes
	}
	if !earliest.IsZero() {
		agg.EarliestPublished = earliest.Format(time.RFC3339)
		agg.LatestPublished = latest.Format(time.RFC3339)
	}

	return agg
}

func quality(articles []model.ArticleRecord, agg model.Aggregate) model.QualityMetrics {
	q := model.QualityMetrics{}
	if len(articles) == 0 {
		return q
	}

	q.CoverageRatio = float64(agg.ArticlesWithContent) / float64(len(articles))
	q.SubstantialRatio = float64(agg.SubstantialArticles) / float64(len(articles))
	if agg.ArticlesWithContent > 0 {
		q.AvgContentLength = float64(agg.TotalCharacters) / float64(agg.ArticlesWithContent)
		q.AvgWordCount = float64(agg.TotalWords) / float64(agg.ArticlesWithContent)
	}
	return q
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
