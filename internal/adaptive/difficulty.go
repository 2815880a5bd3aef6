package adaptive

// #region imports
import (
	"math"
)

// #endregion

// #region constants

const (
	kFactor       = 32.0 // sensitivity of rating changes
	minDifficulty = 1.0
	maxDifficulty = 10.0
)

// #endregion

// #region types

// Adjustment is the outcome of one Elo-style difficulty update.
type Adjustment struct {
	NewDifficulty float64
	Change        float64
	Reason        string
}

// Engine computes Elo-like difficulty adjustments on a 1–10 scale.
type Engine struct{}

// NewEngine returns a difficulty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// #endregion types

// #region adjust

// Adjust computes the next difficulty from observed performance.
// understanding and load are 0–100; responseTime and expectedTime are
// seconds. The result is clamped to [1,10] and rounded to one decimal.
func (e *Engine) Adjust(current, understanding, load, responseTime, expectedTime float64) Adjustment {
	expected := expectedPerformance(current)
	actual := actualPerformance(understanding, load, responseTime, expectedTime)

	change := (kFactor / 10.0) * (actual - expected)

	next := clamp(current+change, minDifficulty, maxDifficulty)
	next = math.Round(next*10) / 10

	return Adjustment{
		NewDifficulty: next,
		Change:        next - current,
		Reason:        changeReason(change, understanding, load),
	}
}

// expectedPerformance decreases linearly with difficulty: 1.0 at the floor,
// 0.5 at the ceiling.
func expectedPerformance(difficulty float64) float64 {
	normalized := (difficulty - minDifficulty) / (maxDifficulty - minDifficulty)
	return 1 - normalized*0.5
}

// actualPerformance blends understanding, inverse cognitive load, and time
// efficiency with 0.5/0.3/0.2 weights.
func actualPerformance(understanding, load, responseTime, expectedTime float64) float64 {
	understandingFactor := understanding / 100
	loadFactor := 1 - load/100

	timeEfficiency := 1.0
	if responseTime > 0 {
		timeEfficiency = math.Min(1, expectedTime/responseTime)
	}

	performance := understandingFactor*0.5 + loadFactor*0.3 + timeEfficiency*0.2
	return clamp(performance, 0, 1)
}

// #endregion adjust

// #region reason

func changeReason(change, understanding, load float64) string {
	if math.Abs(change) < 0.1 {
		return "Performance matches current difficulty level"
	}
	if change > 0 {
		switch {
		case understanding >= 85 && load < 60:
			return "Excellent performance with low cognitive load - increasing challenge"
		case understanding >= 75:
			return "Good understanding - gradually increasing difficulty"
		default:
			return "Slight increase to maintain optimal challenge"
		}
	}
	switch {
	case load > 85:
		return "High cognitive load detected - reducing difficulty"
	case understanding < 60:
		return "Low understanding - decreasing difficulty for better learning"
	default:
		return "Slight decrease to optimize learning zone"
	}
}

// #endregion reason

// #region helpers

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
