package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

const previewChars = 200

// Compare summarizes labeled batches against each other and names the label
// with the most total content as best. Ties resolve to the lexicographically
// first label so the result is deterministic.
func Compare(batches map[string]model.BatchResult) model.Comparison {
	cmp := model.Comparison{Methods: make(map[string]model.MethodStats, len(batches))}

	labels := make([]string, 0, len(batches))
	for label := range batches {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	bestChars := -1
	for _, label := range labels {
		b := batches[label]
		stats := model.MethodStats{
			Articles:        len(b.Articles),
			TotalCharacters: b.Totals.TotalCharacters,
		}
		if stats.Articles > 0 {
			stats.AvgCharsPerArticle = float64(stats.TotalCharacters) / float64(stats.Articles)
		}
		cmp.Methods[label] = stats

		if stats.TotalCharacters > bestChars {
			bestChars = stats.TotalCharacters
			cmp.Best = label
		}
	}

	return cmp
}

// RenderText renders a batch as a human-readable report: coverage statistics
// followed by the top-N articles ranked by content length.
func RenderText(res model.BatchResult, topN int) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(&sb, "%s\nNEWS ANALYSIS FOR %s\n%s\n", rule, res.Symbol, rule)

	if res.Message != "" && res.TotalProcessed == 0 {
		fmt.Fprintf(&sb, "%s\n", res.Message)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Articles available:   %d\n", res.TotalAvailable)
	fmt.Fprintf(&sb, "Articles processed:   %d\n", res.TotalProcessed)
	fmt.Fprintf(&sb, "Articles w/ content:  %d\n", res.Totals.ArticlesWithContent)
	fmt.Fprintf(&sb, "Substantial articles: %d\n", res.Totals.SubstantialArticles)
	fmt.Fprintf(&sb, "Total characters:     %d\n", res.Totals.TotalCharacters)
	fmt.Fprintf(&sb, "Total words:          %d\n", res.Totals.TotalWords)
	fmt.Fprintf(&sb, "Unique publishers:    %d\n", res.Totals.UniquePublishers)
	fmt.Fprintf(&sb, "Avg article length:   %.0f chars\n", res.Quality.AvgContentLength)

	if res.Totals.EarliestPublished != "" {
		fmt.Fprintf(&sb, "Date range:           %s to %s\n",
			res.Totals.EarliestPublished, res.Totals.LatestPublished)
	}

	if len(res.Totals.ContentTypes) > 0 {
		sb.WriteString("\nCONTENT TYPES\n")
		for _, ct := range sortedCountKeys(res.Totals.ContentTypes) {
			fmt.Fprintf(&sb, "  %s: %d\n", ct, res.Totals.ContentTypes[ct])
		}
	}

	ranked := rankByLength(res.Articles)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	fmt.Fprintf(&sb, "\nTOP %d ARTICLES BY CONTENT\n%s\n", len(ranked), strings.Repeat("-", 70))
	for i, a := range ranked {
		fmt.Fprintf(&sb, "\n%2d. %s\n", i+1, a.Title)
		fmt.Fprintf(&sb, "    %d chars | %d words\n", a.CharCount, a.WordCount)
		fmt.Fprintf(&sb, "    %s | %s\n", a.Publisher, a.PublishedAt)
		if a.Link != "" {
			fmt.Fprintf(&sb, "    %s\n", a.Link)
		}
		if a.Body != "" {
			fmt.Fprintf(&sb, "    %s\n", truncate(a.Body, previewChars))
		}
		if a.SentimentTally.Total() > 0 {
			t := a.SentimentTally
			fmt.Fprintf(&sb, "    sentiment: positive=%d negative=%d neutral=%d\n",
				t.Positive, t.Negative, t.Neutral)
		}
	}

	errored := 0
	for _, a := range res.Articles {
		if a.IsError() {
			errored++
		}
	}
	if errored > 0 {
		fmt.Fprintf(&sb, "\n%d article(s) failed to process and were kept as error records\n", errored)
	}

	sb.WriteString(rule + "\n")
	return sb.String()
}

// RenderComparison renders a comparison table across labeled batches.
func RenderComparison(cmp model.Comparison) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(&sb, "%s\nCOVERAGE COMPARISON\n%s\n", rule, rule)

	labels := make([]string, 0, len(cmp.Methods))
	for label := range cmp.Methods {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		s := cmp.Methods[label]
		fmt.Fprintf(&sb, "%-20s %4d articles  %8d chars  %8.1f avg\n",
			label, s.Articles, s.TotalCharacters, s.AvgCharsPerArticle)
	}

	if cmp.Best != "" {
		fmt.Fprintf(&sb, "\nBest coverage: %s\n", cmp.Best)
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

// rankByLength returns the non-error articles sorted by char count,
// descending. Ordering is stable so equal-length articles keep input order.
func rankByLength(articles []model.ArticleRecord) []model.ArticleRecord {
	ranked := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		if !a.IsError() && a.CharCount > 0 {
			ranked = append(ranked, a)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CharCount > ranked[j].CharCount
	})
	return ranked
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
