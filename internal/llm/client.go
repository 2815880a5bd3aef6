package llm

// #region imports
import (
	"context"
)

// #endregion

// #region providers

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// #endregion

// #region types

// Request is a single text-completion request.
type Request struct {
	Prompt      string
	System      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client is a text-completion provider.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
}

// #endregion types
