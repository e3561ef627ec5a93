package ai

import (
	"context"
	"errors"
)

// Generator is the injected text-generation capability. Implement this
// interface to add new providers (Gemini, Ollama, OpenAI, ...). It is always
// passed explicitly into the components that need it, never looked up from
// globals.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

var (
	// ErrUnavailable means the generation capability is not initialized or
	// not reachable.
	ErrUnavailable = errors.New("ai generator is not available")
	// ErrGenerationFailed means the provider answered but did not produce
	// usable text.
	ErrGenerationFailed = errors.New("ai generation failed")
)
