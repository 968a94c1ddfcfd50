package analyzer

import (
	"fmt"
	"strings"
)

// bodyFields are the textual candidates for the article body, tried in
// order. Distinct non-empty candidates are concatenated rather than
// first-match-wins, so an item carrying both a summary and a longer
// description keeps both.
var bodyFields = []string{"summary", "description", "intro", "excerpt", "body", "text"}

// linkFields are the candidate keys for the canonical article link.
var linkFields = []string{"canonicalUrl", "clickThroughUrl"}

const defaultContentType = "STORY"

// fieldBundle is the raw field extraction for one item, before any derived
// metrics are computed.
type fieldBundle struct {
	title          string
	body           string
	contentSources []string
	publisher      string
	publisherURL   string
	link           string
	publishedAt    string
	contentType    string
	category       string
	tags           []string
	hasThumbnail   bool
	thumbnailURL   string
}

// extract resolves every field of one unwrapped item through its fallback
// chain. It is a pure transform: a field that cannot be resolved gets its
// documented default and extraction moves on, it never fails the item.
func extract(content Payload, seq int) fieldBundle {
	b := fieldBundle{
		title:       fmt.Sprintf("Article %d", seq),
		publisher:   "Unknown",
		contentType: defaultContentType,
	}

	if title, ok := content.Text("title"); ok && title != "" {
		b.title = title
	}

	for _, field := range bodyFields {
		text, ok := content.Text(field)
		if !ok || text == "" {
			continue
		}
		if strings.Contains(b.body, text) {
			continue
		}
		if b.body != "" {
			b.body += " "
		}
		b.body += text
		b.contentSources = append(b.contentSources, field)
	}
	b.body = strings.TrimSpace(b.body)

	if provider, ok := content.Object("provider"); ok {
		if name, ok := provider.Text("displayName"); ok && name != "" {
			b.publisher = name
		}
		b.publisherURL, _ = provider.Text("url")
	} else if v, present := content["provider"]; present && v != nil {
		b.publisher = fmt.Sprintf("%v", v)
	}

	for _, field := range linkFields {
		if s, ok := content.Text(field); ok && s != "" {
			b.link = s
			break
		}
		if nested, ok := content.Object(field); ok {
			if s, ok := nested.Text("url"); ok && s != "" {
				b.link = s
				break
			}
		}
	}

	b.publishedAt = resolvePublishedAt(content)

	if ct, ok := content.Text("contentType"); ok && ct != "" {
		b.contentType = ct
	}
	b.category, _ = content.Text("category")

	if tags, ok := content.List("tags"); ok {
		for _, t := range tags {
			b.tags = append(b.tags, fmt.Sprintf("%v", t))
		}
	}

	b.hasThumbnail, b.thumbnailURL = resolveThumbnail(content)

	return b
}

// resolvePublishedAt keeps textual pubDate values as-is and converts numeric
// unix timestamps. Zero, absent and non-positive values resolve to the
// "N/A" sentinel.
func resolvePublishedAt(content Payload) string {
	if s, ok := content.Text("pubDate"); ok {
		if s == "" {
			return unknownDate
		}
		return s
	}
	if n, ok := content.Number("pubDate"); ok && n > 0 {
		return formatUnix(int64(n))
	}
	return unknownDate
}

func resolveThumbnail(content Payload) (bool, string) {
	if thumb, ok := content.Object("thumbnail"); ok {
		if len(thumb) == 0 {
			return false, ""
		}
		url, _ := thumb.Text("url")
		return true, url
	}
	v, present := content["thumbnail"]
	if !present || v == nil || v == "" || v == false {
		return false, ""
	}
	return true, ""
}
