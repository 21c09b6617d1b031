package summarizer

import "context"

// Summarizer defines the interface for prompt-driven transcript condensation
type Summarizer interface {
	Summarize(ctx context.Context, apiKey, transcript, prompt string) (string, error)
}
