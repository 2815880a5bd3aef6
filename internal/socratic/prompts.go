package socratic

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region generator-prompt

const generatorTemplate = `You are a Socratic tutor. Provide a clear, step-by-step explanatory answer. Keep grounded; label external facts with SOURCE: <note>. Close with exactly 2 Socratic follow-ups.

DELIVERY HINTS:
- %s

USER QUESTION:
%s

CONTEXT:
%s`

// GeneratorPrompt renders the primary tutoring prompt. Context documents are
// joined by blank lines, hints by bullet separators; an empty hint list
// renders the explicit "None" placeholder. The grounding and follow-up
// instructions are a contract on the downstream model, not enforced here.
func GeneratorPrompt(question string, contextDocs, hints []string) string {
	hintText := "None"
	if len(hints) > 0 {
		hintText = strings.Join(hints, "\n- ")
	}
	return fmt.Sprintf(generatorTemplate, hintText, question, strings.Join(contextDocs, "\n\n"))
}

// #endregion generator-prompt

// #region critic-prompt

const criticTemplate = `You are a critic assistant. Review the draft answer below for factual errors, pedagogy, and clarity. Return compact JSON only as: {"score":0-100,"issues":[...],"edits":"<improved answer>"}. Draft:
%s`

// CriticPrompt renders the review prompt for a generated draft.
func CriticPrompt(draft string) string {
	return fmt.Sprintf(criticTemplate, draft)
}

// #endregion critic-prompt
