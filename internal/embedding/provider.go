package embedding

import "context"

// maxEmbedChars keeps issue texts within embedding token limits
const maxEmbedChars = 6000

// Provider defines the interface for embedding generation
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Close() error
}

// PrepareIssueText combines title and body for embedding. A missing body is
// simply the empty string; the concatenation never fails.
func PrepareIssueText(title, body string) string {
	text := title + " " + body

	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars] + "..."
	}

	return text
}
