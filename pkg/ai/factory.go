package ai

// Config holds AI provider configuration. The Ollama fields are getters so
// the runtime settings API can repoint a running service.
type Config struct {
	Provider ProviderType

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewGenerator creates a Generator based on the config. Switch provider by
// changing cfg.Provider.
func NewGenerator(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, ErrUnavailable
		}
		return NewGeminiGenerator(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaGenerator(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		// Auto: Gemini when an API key is present, Ollama otherwise
		if cfg.GeminiAPIKey != "" {
			return NewGeminiGenerator(cfg.GeminiAPIKey), nil
		}
		return NewOllamaGenerator(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil
	}
}
