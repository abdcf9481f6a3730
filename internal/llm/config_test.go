package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderEnv blanks every env var the config layer reads, so tests
// are independent of the host environment.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ONRAMP_LLM_PROVIDER", "ONRAMP_LLM_RETRIES",
		"ONRAMP_ANTHROPIC_API_KEY", "ONRAMP_ANTHROPIC_MODEL",
		"ONRAMP_OPENAI_API_KEY", "ONRAMP_OPENAI_MODEL", "ONRAMP_OPENAI_BASE_URL",
		"ONRAMP_GEMINI_API_KEY", "ONRAMP_GEMINI_MODEL",
		"ONRAMP_OPENROUTER_API_KEY", "ONRAMP_OPENROUTER_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
	// The pipeline never retries on its own.
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ONRAMP_LLM_PROVIDER", "openai")
	t.Setenv("ONRAMP_OPENAI_API_KEY", "sk-test")
	t.Setenv("ONRAMP_OPENAI_MODEL", "gpt-test")
	t.Setenv("ONRAMP_LLM_RETRIES", "3")

	cfg := ConfigFromEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-test", cfg.OpenAI.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	require.NoError(t, cfg.Validate())
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()

	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearProviderEnv(t)

	_, ok := DiscoverConfig()
	assert.False(t, ok)
}

func TestResolveConfig(t *testing.T) {
	t.Run("explicit env wins", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("ONRAMP_LLM_PROVIDER", "gemini")
		t.Setenv("ONRAMP_GEMINI_API_KEY", "g-key")
		t.Setenv("OPENAI_API_KEY", "sk-openai")

		cfg, err := ResolveConfig()
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Provider)
	})

	t.Run("falls back to discovery", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

		cfg, err := ResolveConfig()
		require.NoError(t, err)
		assert.Equal(t, "anthropic", cfg.Provider)
	})

	t.Run("no configuration at all", func(t *testing.T) {
		clearProviderEnv(t)

		_, err := ResolveConfig()
		var missing *ErrMissingAPIKey
		require.ErrorAs(t, err, &missing)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	require.Error(t, cfg.Validate())

	cfg.Anthropic.APIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	require.NoError(t, cfg.Validate())
}
