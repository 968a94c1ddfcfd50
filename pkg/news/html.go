package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textFields are the item keys that may carry HTML markup from the provider.
var textFields = []string{"summary", "description", "intro", "excerpt", "body", "text"}

// htmlToText flattens HTML markup to its visible text. Input that is not
// parseable HTML comes back unchanged.
func htmlToText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// sanitizeText rewrites the textual fields of one raw item in place,
// stripping provider HTML so downstream character counts measure prose, not
// markup. The item shape is otherwise untouched.
func sanitizeText(item map[string]any) {
	target := item
	if inner, ok := item["content"].(map[string]any); ok {
		target = inner
	}
	for _, field := range textFields {
		if s, ok := target[field].(string); ok {
			target[field] = htmlToText(s)
		}
	}
}
