package orchestrator

// #region request

// Request bounds applied before the pipeline runs.
const (
	defaultMaxTokens = 800
	minMaxTokens     = 64
	maxMaxTokens     = 2048

	defaultTemperature = 0.2

	criticMaxTokens   = 400
	criticTemperature = 0.0
)

// ChatRequest is one inbound tutoring turn.
type ChatRequest struct {
	LearnerID   string   `json:"user_id"`
	Question    string   `json:"question"`
	ContextDocs []string `json:"context_docs,omitempty"`
	Device      string   `json:"device,omitempty"`
	LocalTime   string   `json:"local_time,omitempty"`
	Model       string   `json:"model,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// normalize applies defaults and clamps the tunable fields. A nil
// temperature takes the default; an explicit 0 is respected.
func (r *ChatRequest) normalize() {
	if r.MaxTokens == 0 {
		r.MaxTokens = defaultMaxTokens
	}
	if r.MaxTokens < minMaxTokens {
		r.MaxTokens = minMaxTokens
	}
	if r.MaxTokens > maxMaxTokens {
		r.MaxTokens = maxMaxTokens
	}

	if r.Temperature == nil {
		t := defaultTemperature
		r.Temperature = &t
	}
	if *r.Temperature < 0 {
		*r.Temperature = 0
	}
	if *r.Temperature > 1 {
		*r.Temperature = 1
	}
}

// #endregion request

// #region response

// Signals are the derived per-turn scores returned to the caller.
type Signals struct {
	RelianceScore float64 `json:"reliance_score"`
}

// Provenance names the capability that produced the answer.
type Provenance struct {
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
	Fallback bool   `json:"fallback,omitempty"`
}

// ChatResponse is the structured pipeline output.
type ChatResponse struct {
	FinalAnswer       string     `json:"final_answer"`
	SocraticQuestions []string   `json:"socratic_questions"`
	Generator         string     `json:"generator"`
	Critic            string     `json:"critic"`
	Signals           Signals    `json:"signals"`
	Provenance        Provenance `json:"provenance"`
	FormattedHTML     string     `json:"formatted_html"`
}

// #endregion response

// #region critic-review

// CriticReview is the parsed critic payload. Score is nil when the critic
// omitted it; absence of Edits and a failed parse are treated identically
// by the reconciliation step.
type CriticReview struct {
	Score  *float64 `json:"score"`
	Issues []string `json:"issues"`
	Edits  string   `json:"edits"`
}

// #endregion critic-review

// #region errors

// Kind classifies pipeline failures so the transport can map status codes.
type Kind int

const (
	// KindInput is a missing or invalid request field. No side effects.
	KindInput Kind = iota
	// KindConfig means the generation capability is unconfigured; rejected
	// before any external call.
	KindConfig
	// KindGeneration means both the primary and fallback model calls failed.
	KindGeneration
	// KindPersistence is a storage failure; the whole request fails.
	KindPersistence
)

// Error is a classified pipeline failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// #endregion errors
