package delivery

import (
	"testing"
)

func TestInferContext_Defaults(t *testing.T) {
	snap := InferContext("", "not-a-date")
	if snap.Device != "unknown" {
		t.Errorf("device = %q, want unknown", snap.Device)
	}
	if snap.Hour != nil {
		t.Errorf("hour = %v, want nil", *snap.Hour)
	}
	if snap.IsEvening || snap.IsCommuteWindow {
		t.Errorf("derived flags should be false: %+v", snap)
	}
}

func TestInferContext_NoTimestamp(t *testing.T) {
	snap := InferContext("desktop", "")
	if snap.Device != "desktop" || snap.Hour != nil {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestInferContext_EveningCommute(t *testing.T) {
	snap := InferContext("mobile", "2024-01-01T19:00:00")
	if snap.Hour == nil || *snap.Hour != 19 {
		t.Fatalf("hour = %v, want 19", snap.Hour)
	}
	if !snap.IsEvening {
		t.Error("19:00 should be evening")
	}
	if !snap.IsCommuteWindow {
		t.Error("19:00 falls in the 17-20 commute window")
	}
}

func TestInferContext_TimeWindows(t *testing.T) {
	cases := []struct {
		ts      string
		evening bool
		commute bool
	}{
		{"2024-06-15T08:30:00", false, true},
		{"2024-06-15T12:00:00", false, false},
		{"2024-06-15T17:00:00", false, true},
		{"2024-06-15T18:00:00", true, true},
		{"2024-06-15T21:00:00", true, false},
		{"2024-06-15T23:59:00", true, false},
		{"2024-06-15T06:59:00", false, false},
	}
	for _, c := range cases {
		snap := InferContext("desktop", c.ts)
		if snap.IsEvening != c.evening || snap.IsCommuteWindow != c.commute {
			t.Errorf("%s: evening=%v commute=%v, want %v/%v",
				c.ts, snap.IsEvening, snap.IsCommuteWindow, c.evening, c.commute)
		}
	}
}

func TestInferContext_RFC3339(t *testing.T) {
	snap := InferContext("tablet", "2024-01-01T07:15:00Z")
	if snap.Hour == nil || *snap.Hour != 7 {
		t.Fatalf("hour = %v, want 7", snap.Hour)
	}
	if !snap.IsCommuteWindow {
		t.Error("07:15 falls in the morning commute window")
	}
}

func TestHints_FixedOrder(t *testing.T) {
	h := 19
	snap := Snapshot{Device: "mobile", Hour: &h, IsEvening: true, IsCommuteWindow: true}
	hints := Hints(snap)
	want := []string{
		"Prefer micro-learning chunks and concise steps.",
		"Use reflective prompts suitable for end-of-day learning.",
		"Offer low-friction, short interactions.",
	}
	if len(hints) != len(want) {
		t.Fatalf("hint count = %d, want %d", len(hints), len(want))
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hint[%d] = %q, want %q", i, hints[i], want[i])
		}
	}
}

func TestHints_EmptyForPlainContext(t *testing.T) {
	if hints := Hints(Snapshot{Device: "desktop"}); len(hints) != 0 {
		t.Errorf("expected no hints, got %v", hints)
	}
}
