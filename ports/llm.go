package ports

import "context"

// LLMClient is the external text-generation collaborator. It is handed
// the assembled fact block verbatim as authoritative context and returns
// free-form interpretation text.
type LLMClient interface {
	ChatCompletion(ctx context.Context, model, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
