package delivery

// #region imports
import (
	"time"
)

// #endregion

// #region snapshot

// Snapshot is the per-request delivery context inferred from the device
// label and an optional local timestamp. Hour is nil when no timestamp
// parsed. Embedded in the interaction record, never persisted standalone.
type Snapshot struct {
	Device          string `json:"device"`
	Hour            *int   `json:"hour"`
	IsEvening       bool   `json:"is_evening"`
	IsCommuteWindow bool   `json:"is_commute_window"`
}

// #endregion snapshot

// #region infer

// Timestamp layouts accepted for local_time, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// InferContext derives a Snapshot from the device label and local timestamp.
// Missing device defaults to "unknown". A timestamp that fails to parse is
// silently absorbed: the derived fields keep their zero defaults.
func InferContext(device, localTime string) Snapshot {
	snap := Snapshot{Device: device}
	if snap.Device == "" {
		snap.Device = "unknown"
	}
	if localTime == "" {
		return snap
	}

	for _, layout := range timeLayouts {
		dt, err := time.Parse(layout, localTime)
		if err != nil {
			continue
		}
		h := dt.Hour()
		snap.Hour = &h
		snap.IsEvening = h >= 18 && h <= 23
		snap.IsCommuteWindow = (h >= 7 && h <= 10) || (h >= 17 && h <= 20)
		break
	}
	return snap
}

// #endregion infer

// #region hints

// Hints returns the delivery hints for a snapshot in fixed order. Order is
// part of the downstream prompt text.
func Hints(snap Snapshot) []string {
	var hints []string
	if snap.Device == "mobile" {
		hints = append(hints, "Prefer micro-learning chunks and concise steps.")
	}
	if snap.IsEvening {
		hints = append(hints, "Use reflective prompts suitable for end-of-day learning.")
	}
	if snap.IsCommuteWindow {
		hints = append(hints, "Offer low-friction, short interactions.")
	}
	return hints
}

// #endregion hints
