package llm

// #region imports
import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// #endregion

// #region client-struct

// OpenAIClient talks to an OpenAI-compatible chat-completion endpoint.
// A custom base URL lets deployments point at OpenRouter-style gateways.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAI creates an OpenAI-compatible client.
func NewOpenAI(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

// #endregion client-struct

// #region complete

// Complete runs one chat completion against the named model.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	var msgs []openai.ChatCompletionMessage
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Provider reports the provider name for telemetry.
func (c *OpenAIClient) Provider() string {
	return ProviderOpenAI
}

// #endregion complete
