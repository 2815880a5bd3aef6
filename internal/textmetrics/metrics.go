package textmetrics

// #region imports
import (
	"math"
	"strings"
	"unicode"
)

// #endregion

// #region tokenize

// Tokenize lowercases text and splits it into maximal runs of word
// characters plus single non-whitespace symbols. Unicode-aware.
// Empty input yields an empty slice.
func Tokenize(text string) []string {
	var tokens []string
	var run []rune

	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, string(run))
			run = run[:0]
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case isWordRune(r):
			run = append(run, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// #endregion tokenize

// #region count-tokens

// CountTokens returns the token count of text, floored at 1 so callers can
// divide by it without guarding.
func CountTokens(text string) int {
	if n := len(Tokenize(text)); n > 1 {
		return n
	}
	return 1
}

// #endregion count-tokens

// #region overlap

// OverlapScore is the Jaccard similarity of the two texts' token sets.
// Returns 0 when either token set is empty (including both empty).
func OverlapScore(candidate, reference string) float64 {
	c := tokenSet(Tokenize(candidate))
	r := tokenSet(Tokenize(reference))
	if len(c) == 0 || len(r) == 0 {
		return 0
	}

	intersection := 0
	union := len(r)
	for tok := range c {
		if _, ok := r[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// #endregion overlap

// #region recall

// RecallScore is the longest common subsequence of the two token sequences,
// normalized by the reference length (floored at 1). Order-sensitive.
// Returns 0 when either sequence is empty.
func RecallScore(candidate, reference string) float64 {
	a := Tokenize(candidate)
	b := Tokenize(reference)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Classic DP table, rolling two rows. Ties resolve to max(up, left),
	// never a diagonal shortcut.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}

	denom := len(b)
	if denom < 1 {
		denom = 1
	}
	return float64(prev[len(b)]) / float64(denom)
}

// #endregion recall

// #region perplexity

const smoothing = 1e-12

// PerplexityProxy exponentiates the Shannon entropy of the token frequency
// distribution. Empty input returns 0 — note the asymmetry with CountTokens,
// which floors at 1; callers depend on this exact boundary.
func PerplexityProxy(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / total
		entropy -= p * math.Log(p+smoothing)
	}
	return math.Exp(entropy)
}

// #endregion perplexity
