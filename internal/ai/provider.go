// Package ai turns the deterministic tax calculation into a natural-language
// reply through a pluggable LLM provider, with a plain-text fallback when no
// provider is reachable.
package ai

import "context"

// Provider is a text-completion backend.
type Provider interface {
	// Name identifies the backend ("openai", "gemini", "ollama").
	Name() string
	// Complete sends a prompt and returns the model's text reply.
	Complete(ctx context.Context, prompt string) (string, error)
}
