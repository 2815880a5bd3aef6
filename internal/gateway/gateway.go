package gateway

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/danielpatrickdp/socratic-tutor/internal/llm"
)

// #endregion

// #region types

// Result is a completed generation with the model that actually served it.
type Result struct {
	Text     string
	Model    string
	Fallback bool
}

// Gateway wraps a text-completion client with model selection, a per-call
// timeout, and a single fallback retry. A second failure is terminal.
type Gateway struct {
	client        llm.Client
	defaultModel  string
	fallbackModel string
	timeout       time.Duration
}

// New creates a gateway over the given provider client.
func New(client llm.Client, defaultModel, fallbackModel string, timeout time.Duration) *Gateway {
	return &Gateway{
		client:        client,
		defaultModel:  defaultModel,
		fallbackModel: fallbackModel,
		timeout:       timeout,
	}
}

// Provider reports the underlying provider name.
func (g *Gateway) Provider() string {
	return g.client.Provider()
}

// #endregion types

// #region generate

// Generate calls the preferred model and, on any failure, retries exactly
// once on the fallback model with the same prompt. Never more than one
// retry, even when fallback equals the preferred model. The returned error
// carries the last failure's message.
func (g *Gateway) Generate(ctx context.Context, req llm.Request) (Result, error) {
	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	text, err := g.call(ctx, req, model)
	if err == nil {
		return Result{Text: text, Model: model}, nil
	}

	log.Printf("[GATEWAY] model %s failed, retrying on fallback %s: %v", model, g.fallbackModel, err)

	text, ferr := g.call(ctx, req, g.fallbackModel)
	if ferr != nil {
		return Result{}, fmt.Errorf("generation failed on %s and fallback %s: %w", model, g.fallbackModel, ferr)
	}
	return Result{Text: text, Model: g.fallbackModel, Fallback: true}, nil
}

func (g *Gateway) call(ctx context.Context, req llm.Request, model string) (string, error) {
	req.Model = model
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.client.Complete(ctx, req)
}

// #endregion generate
