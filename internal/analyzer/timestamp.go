package analyzer

import "time"

// unknownDate is the sentinel for timestamps that are absent or unparsable.
const unknownDate = "N/A"

// unixLayout is how numeric provider timestamps are rendered.
const unixLayout = "2006-01-02 15:04:05"

// publishedLayouts are the accepted layouts when parsing published_at back
// into a time for date-range analysis. The first successful parse wins;
// values matching none are excluded from the range but still counted in
// totals.
var publishedLayouts = []string{
	unixLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(unixLayout)
}

// parsePublished attempts each accepted layout in order.
func parsePublished(s string) (time.Time, bool) {
	if s == "" || s == unknownDate {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
