package llm

const digestSystemPrompt = `You are a financial news editor. Given the ticker symbol and the most substantial news articles from one analysis run, write a briefing for that stock.

Rules for the paragraph:
- Single paragraph, concise and neutral
- Summarize what the coverage says about this stock right now

Rules for bullets:
- 3 to 5 bullet points
- Each bullet covers a distinct event or theme from the articles
- Include numbers and percentages where the articles provide them
- One sentence per bullet

Output as JSON only, no other text:
{
  "paragraph": "briefing paragraph",
  "bullets": ["key point 1", "key point 2", "key point 3"]
}`

// DigestInput is one article handed to the model, already normalized.
type DigestInput struct {
	Title       string
	Body        string
	Publisher   string
	PublishedAt string
}

type DigestResult struct {
	Paragraph string
	Bullets   []string
	ModelUsed string
}

// DigestClient produces a briefing over the articles of one analysis run.
type DigestClient interface {
	Digest(symbol string, articles []DigestInput) (*DigestResult, error)
}
