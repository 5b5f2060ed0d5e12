package generation

import "context"

// Generator defines the interface for delegating a question to an external
// large-language-model service. This interface serves as a boundary between
// the application core and the LLM provider, so executors never couple to a
// specific vendor SDK.
type Generator interface {
	// Generate sends a system prompt and a user prompt to the model and
	// returns the raw text reply.
	//
	// Implementations must return an error instead of partial or empty
	// output; the task orchestration layer records any failure on the
	// owning task.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
