package analyzer

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtractEnvelopeUnwrap(t *testing.T) {
	wrapped := Payload(map[string]any{
		"content": map[string]any{"title": "Inside"},
	})
	flat := Payload(map[string]any{"title": "Flat"})

	title, ok := wrapped.Content().Text("title")
	assert.Equal(t, true, ok)
	assert.Equal(t, "Inside", title)

	title, ok = flat.Content().Text("title")
	assert.Equal(t, true, ok)
	assert.Equal(t, "Flat", title)
}

func TestExtractTitlePlaceholder(t *testing.T) {
	b := extract(Payload(map[string]any{}), 3)
	assert.Equal(t, "Article 3", b.title)
}

func TestExtractBodyConcatenation(t *testing.T) {
	content := Payload(map[string]any{
		"summary":     "Short take.",
		"description": "A longer description of the story.",
	})

	b := extract(content, 1)

	assert.Equal(t, "Short take. A longer description of the story.", b.body)
	assert.Equal(t, []string{"summary", "description"}, b.contentSources)
}

func TestExtractBodySkipsDuplicates(t *testing.T) {
	content := Payload(map[string]any{
		"summary":     "The full story text here.",
		"description": "full story",
	})

	b := extract(content, 1)

	// description is already contained in the accumulated body
	assert.Equal(t, "The full story text here.", b.body)
	assert.Equal(t, []string{"summary"}, b.contentSources)
}

func TestExtractBodySkipsNonStrings(t *testing.T) {
	content := Payload(map[string]any{
		"summary": map[string]any{"nested": "junk"},
		"intro":   "Usable intro.",
	})

	b := extract(content, 1)

	assert.Equal(t, "Usable intro.", b.body)
	assert.Equal(t, []string{"intro"}, b.contentSources)
}

func TestExtractPublisher(t *testing.T) {
	tests := []struct {
		name    string
		content map[string]any
		want    string
	}{
		{
			name:    "display name from mapping",
			content: map[string]any{"provider": map[string]any{"displayName": "Reuters"}},
			want:    "Reuters",
		},
		{
			name:    "mapping without display name",
			content: map[string]any{"provider": map[string]any{"id": "r1"}},
			want:    "Unknown",
		},
		{
			name:    "plain string provider",
			content: map[string]any{"provider": "Bloomberg"},
			want:    "Bloomberg",
		},
		{
			name:    "absent provider",
			content: map[string]any{},
			want:    "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := extract(Payload(tt.content), 1)
			assert.Equal(t, tt.want, b.publisher)
		})
	}
}

func TestExtractLink(t *testing.T) {
	tests := []struct {
		name    string
		content map[string]any
		want    string
	}{
		{
			name:    "canonical as string",
			content: map[string]any{"canonicalUrl": "https://example.com/a"},
			want:    "https://example.com/a",
		},
		{
			name:    "canonical as nested mapping",
			content: map[string]any{"canonicalUrl": map[string]any{"url": "https://example.com/b"}},
			want:    "https://example.com/b",
		},
		{
			name: "click-through fallback",
			content: map[string]any{
				"clickThroughUrl": map[string]any{"url": "https://example.com/c"},
			},
			want: "https://example.com/c",
		},
		{
			name:    "no link at all",
			content: map[string]any{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := extract(Payload(tt.content), 1)
			assert.Equal(t, tt.want, b.link)
		})
	}
}

func TestResolvePublishedAt(t *testing.T) {
	passthrough := Payload(map[string]any{"pubDate": "2026-02-26T12:00:00Z"})
	assert.Equal(t, "2026-02-26T12:00:00Z", resolvePublishedAt(passthrough))

	numeric := Payload(map[string]any{"pubDate": float64(1767225600)})
	assert.Equal(t, "2026-01-01 00:00:00", resolvePublishedAt(numeric))

	zero := Payload(map[string]any{"pubDate": float64(0)})
	assert.Equal(t, "N/A", resolvePublishedAt(zero))

	absent := Payload(map[string]any{})
	assert.Equal(t, "N/A", resolvePublishedAt(absent))

	empty := Payload(map[string]any{"pubDate": ""})
	assert.Equal(t, "N/A", resolvePublishedAt(empty))
}

func TestResolveThumbnail(t *testing.T) {
	withURL := Payload(map[string]any{
		"thumbnail": map[string]any{"url": "https://img.example.com/t.png"},
	})
	has, url := resolveThumbnail(withURL)
	assert.Equal(t, true, has)
	assert.Equal(t, "https://img.example.com/t.png", url)

	emptyMap := Payload(map[string]any{"thumbnail": map[string]any{}})
	has, url = resolveThumbnail(emptyMap)
	assert.Equal(t, false, has)
	assert.Equal(t, "", url)

	absent := Payload(map[string]any{})
	has, _ = resolveThumbnail(absent)
	assert.Equal(t, false, has)
}
