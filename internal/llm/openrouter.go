package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient wraps OpenAIClient with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterClient struct {
	*OpenAIClient
}

// NewOpenRouterClient creates a client targeting the OpenRouter API.
func NewOpenRouterClient(cfg OpenRouterConfig, maxTokens int) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: "openrouter"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAIClientRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, maxTokens)
	if err != nil {
		return nil, err
	}

	return &OpenRouterClient{OpenAIClient: inner}, nil
}
