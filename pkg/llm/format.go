package llm

import (
	"fmt"
	"strings"
)

const maxBodyChars = 400

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatDigestPrompt(symbol string, articles []DigestInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol: %s\n\n", symbol)
	for i, a := range articles {
		fmt.Fprintf(&sb, "[%d] Title: %s\n", i+1, a.Title)
		fmt.Fprintf(&sb, "    Content: %s\n", truncate(a.Body, maxBodyChars))
		fmt.Fprintf(&sb, "    Publisher: %s\n", a.Publisher)
		fmt.Fprintf(&sb, "    Published: %s\n", a.PublishedAt)
		sb.WriteString("\n")
	}
	return sb.String()
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
