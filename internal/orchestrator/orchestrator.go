package orchestrator

// #region imports
import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/socratic-tutor/internal/adaptive"
	"github.com/danielpatrickdp/socratic-tutor/internal/delivery"
	"github.com/danielpatrickdp/socratic-tutor/internal/gateway"
	"github.com/danielpatrickdp/socratic-tutor/internal/llm"
	"github.com/danielpatrickdp/socratic-tutor/internal/profile"
	"github.com/danielpatrickdp/socratic-tutor/internal/socratic"
	"github.com/danielpatrickdp/socratic-tutor/internal/store"
	"github.com/danielpatrickdp/socratic-tutor/internal/textmetrics"
)

// #endregion

// #region orchestrator-struct

// Orchestrator runs the ask → generate → critique → score pipeline. One
// sequential pipeline per request; requests are independent except for the
// shared store and same-learner profile writes.
type Orchestrator struct {
	gateway  *gateway.Gateway // nil when no generation credential is configured
	store    *store.Store
	adaptive *adaptive.Engine
	seedFn   func() int64
}

// New creates a fully wired orchestrator. gw may be nil; chat requests then
// fail with a configuration error before any call is attempted.
func New(gw *gateway.Gateway, st *store.Store) *Orchestrator {
	return &Orchestrator{
		gateway:  gw,
		store:    st,
		adaptive: adaptive.NewEngine(),
		seedFn:   func() int64 { return time.Now().UnixNano() },
	}
}

// #endregion orchestrator-struct

// #region run

// Run executes the full learning-interaction pipeline for one request.
func (o *Orchestrator) Run(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	// 1. Validate.
	if strings.TrimSpace(req.LearnerID) == "" {
		return nil, &Error{Kind: KindInput, Err: errors.New("user_id required")}
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, &Error{Kind: KindInput, Err: errors.New("question required")}
	}
	req.normalize()

	// 2. Load-or-create profile. The insert is idempotent at the store.
	prof, found, err := o.store.GetProfile(req.LearnerID)
	if err != nil {
		return nil, &Error{Kind: KindPersistence, Err: err}
	}
	if !found {
		prof = profile.Default()
		if err := o.store.EnsureLearner(req.LearnerID, prof); err != nil {
			return nil, &Error{Kind: KindPersistence, Err: err}
		}
	}

	// 3. Infer context and hints. Never fails; malformed input degrades to
	// defaults.
	snap := delivery.InferContext(req.Device, req.LocalTime)
	hints := delivery.Hints(snap)

	// 4. Generate. Configuration is checked before any call cost.
	if o.gateway == nil {
		return nil, &Error{Kind: KindConfig, Err: errors.New("generation capability not configured; set the provider API key")}
	}

	genPrompt := socratic.GeneratorPrompt(req.Question, req.ContextDocs, hints)
	genStart := time.Now()
	genRes, err := o.gateway.Generate(ctx, llm.Request{
		Prompt:      genPrompt,
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: *req.Temperature,
	})
	o.trace(req.LearnerID, "generate", genRes.Model, time.Since(genStart), err)
	if err != nil {
		return nil, &Error{Kind: KindGeneration, Err: err}
	}

	// 5. Critique, with tighter bounds than the primary call.
	criticPrompt := socratic.CriticPrompt(genRes.Text)
	critStart := time.Now()
	critRes, err := o.gateway.Generate(ctx, llm.Request{
		Prompt:      criticPrompt,
		Model:       req.Model,
		MaxTokens:   criticMaxTokens,
		Temperature: criticTemperature,
	})
	o.trace(req.LearnerID, "critique", critRes.Model, time.Since(critStart), err)
	if err != nil {
		return nil, &Error{Kind: KindGeneration, Err: err}
	}

	// 6. Reconcile. Parse failures are swallowed; the generator's text
	// stands unless the critic proposed non-empty edits.
	finalAnswer := genRes.Text
	review, parsed := ParseCriticReview(critRes.Text)
	if parsed && strings.TrimSpace(review.Edits) != "" {
		finalAnswer = review.Edits
	}

	// 7. Socratic follow-ups, independent of answer content.
	q1, q2 := socratic.Questions(o.seedFn())

	// 8. Signals.
	answerTokens := textmetrics.CountTokens(finalAnswer)
	questionTokens := textmetrics.CountTokens(req.Question)
	reliance := float64(answerTokens) / float64(questionTokens)

	ctxJSON, _ := json.Marshal(struct {
		Ctx   delivery.Snapshot `json:"ctx"`
		Hints []string          `json:"hints"`
	}{snap, hints})

	// 9. Persist interaction, then metrics, in one transaction.
	rec := store.InteractionRecord{
		SessionID:      uuid.New().String(),
		LearnerID:      req.LearnerID,
		Question:       req.Question,
		ContextJSON:    string(ctxJSON),
		Generator:      genRes.Text,
		CriticRaw:      critRes.Text,
		FinalAnswer:    finalAnswer,
		SocraticQ1:     q1,
		SocraticQ2:     q2,
		AnswerTokens:   answerTokens,
		QuestionTokens: questionTokens,
		RelianceScore:  reliance,
		Difficulty:     prof.KnowledgeLevel,
	}
	met := store.MetricsRecord{
		Overlap:    textmetrics.OverlapScore(finalAnswer, genRes.Text),
		Recall:     textmetrics.RecallScore(finalAnswer, genRes.Text),
		Perplexity: textmetrics.PerplexityProxy(finalAnswer),
		MetaJSON:   `{"note":"final vs generator"}`,
	}
	if _, err := o.store.SaveInteraction(rec, met); err != nil {
		o.trace(req.LearnerID, "persist", critRes.Model, time.Since(start), err)
		return nil, &Error{Kind: KindPersistence, Err: err}
	}

	// Downstream adaptation: fold the critic's score into the learner's
	// knowledge level. Best effort, never fails the request.
	if parsed && review.Score != nil {
		o.applyAdaptation(req.LearnerID, prof, *review.Score)
	}

	log.Printf("[PIPE] learner=%s model=%s fallback=%v reliance=%.2f total=%s",
		req.LearnerID, critRes.Model, genRes.Fallback, reliance, time.Since(start).Round(time.Millisecond))

	// 10. Respond.
	return &ChatResponse{
		FinalAnswer:       finalAnswer,
		SocraticQuestions: []string{q1, q2},
		Generator:         genRes.Text,
		Critic:            critRes.Text,
		Signals:           Signals{RelianceScore: reliance},
		Provenance: Provenance{
			Model:    genRes.Model,
			Endpoint: endpointLabel(o.gateway.Provider()),
			Fallback: genRes.Fallback,
		},
		FormattedHTML: renderHTML(finalAnswer, reliance),
	}, nil
}

// #endregion run

// #region adaptation

// Neutral stand-ins where no per-turn telemetry exists: cognitive load sits
// at the midpoint and time efficiency at parity.
const (
	neutralLoad = 50.0
	neutralTime = 1.0
)

// applyAdaptation maps the critic score onto the Elo-style difficulty engine
// and writes the adjusted knowledge level back to the profile.
func (o *Orchestrator) applyAdaptation(learnerID string, prof profile.Profile, score float64) {
	current := 1 + prof.KnowledgeLevel*9
	adj := o.adaptive.Adjust(current, score, neutralLoad, neutralTime, neutralTime)
	prof.KnowledgeLevel = (adj.NewDifficulty - 1) / 9

	if err := o.store.UpdateProfile(learnerID, prof); err != nil {
		log.Printf("[PIPE] profile update failed for %s: %v", learnerID, err)
		return
	}
	log.Printf("[PIPE] difficulty %.1f → %.1f for %s: %s", current, adj.NewDifficulty, learnerID, adj.Reason)
}

// #endregion adaptation

// #region helpers

// trace appends a stage row; trace failures are logged, never surfaced.
func (o *Orchestrator) trace(learnerID, stage, model string, d time.Duration, stageErr error) {
	err := o.store.LogStage(store.TraceEntry{
		LearnerID: learnerID,
		Stage:     stage,
		Model:     model,
		Duration:  d,
		Err:       stageErr,
	})
	if err != nil {
		log.Printf("[PIPE] trace write failed: %v", err)
	}
}

func endpointLabel(provider string) string {
	switch provider {
	case llm.ProviderGemini:
		return "Google Generative AI"
	case llm.ProviderOpenAI:
		return "OpenAI Chat Completions"
	}
	return provider
}

// renderHTML builds the display fragment: newlines become line breaks inside
// a fixed container. Convenience field only; no other component parses it.
func renderHTML(finalAnswer string, reliance float64) string {
	formatted := strings.ReplaceAll(finalAnswer, "\n", "<br>")
	return fmt.Sprintf(`<div class="response-container">
  <div class="final-answer">
    <h4>📝 Answer</h4>
    <div class="answer-content">%s</div>
  </div>
  <div class="response-meta">
    <div class="signals"><strong>Signals:</strong> Reliance Score: %.2f</div>
  </div>
</div>`, formatted, reliance)
}

// #endregion helpers
