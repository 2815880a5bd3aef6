package llm

// #region imports
import (
	"context"
	"fmt"
	"strings"
)

// #endregion

// #region factory

// NewClient builds the provider client named by provider. An empty provider
// defaults to Gemini, matching the hosted capability the system was built
// against.
func NewClient(ctx context.Context, provider, apiKey, baseURL string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderGemini, "":
		return NewGemini(ctx, apiKey)
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("openai: api key is required")
		}
		return NewOpenAI(apiKey, baseURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

// #endregion factory
