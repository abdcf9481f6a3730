package llm

import (
	"context"
	"fmt"
)

// NewClient creates a Client from configuration, wrapped with logging and
// the opt-in retry decorator (pass-through at the default MaxAttempts=1).
func NewClient(ctx context.Context, cfg Config, recorder EventRecorder) (Client, error) {
	var base Client
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicClient(cfg.Anthropic, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIClient(cfg.OpenAI, cfg.MaxTokens)
	case "gemini":
		base, err = NewGeminiClient(ctx, cfg.Gemini, cfg.MaxTokens)
	case "openrouter":
		base, err = NewOpenRouterClient(cfg.OpenRouter, cfg.MaxTokens)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if recorder == nil {
		recorder = NopRecorder{}
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, recorder)
	return WithRetry(logged, cfg.Retry), nil
}
