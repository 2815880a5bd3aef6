package profile

// #region imports
import (
	"encoding/json"
)

// #endregion

// #region profile

// Profile is the per-learner adaptation record. All scalars live in [0,1].
// Persisted as an opaque JSON blob keyed by learner id; an absent blob is
// equivalent to Default().
type Profile struct {
	KnowledgeLevel float64 `json:"knowledge_level"`
	Engagement     float64 `json:"engagement"`
	Fatigue        float64 `json:"fatigue"`
	Reliance       float64 `json:"reliance"`
	Style          string  `json:"style"`
}

// Default returns the profile assigned on first interaction.
func Default() Profile {
	return Profile{
		KnowledgeLevel: 0.5,
		Engagement:     0.5,
		Fatigue:        0.1,
		Reliance:       0.3,
		Style:          "balanced",
	}
}

// #endregion profile

// #region serialization

// FromJSON decodes a stored profile blob. Missing fields keep their default
// values; a malformed blob degrades to Default() rather than erroring.
func FromJSON(raw []byte) Profile {
	p := Default()
	if len(raw) == 0 {
		return p
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Default()
	}
	return p
}

// ToJSON encodes the profile for storage.
func (p Profile) ToJSON() []byte {
	b, _ := json.Marshal(p)
	return b
}

// #endregion serialization
