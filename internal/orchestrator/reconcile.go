package orchestrator

// #region imports
import (
	"encoding/json"
	"regexp"
)

// #endregion

// #region reconcile

// Greedy span from the first '{' to the last '}' — the critic is asked for
// a single compact object, so anything fancier is wasted on it.
var jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// ParseCriticReview extracts the first {...} span from the critic's raw
// output and decodes it. ok is false when no span exists or it fails to
// parse; callers then fall back to the generator's text. Never errors.
func ParseCriticReview(raw string) (CriticReview, bool) {
	span := jsonSpanRe.FindString(raw)
	if span == "" {
		return CriticReview{}, false
	}
	var review CriticReview
	if err := json.Unmarshal([]byte(span), &review); err != nil {
		return CriticReview{}, false
	}
	return review, true
}

// #endregion reconcile
