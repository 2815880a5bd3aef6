package profile

import (
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.KnowledgeLevel != 0.5 || p.Engagement != 0.5 || p.Fatigue != 0.1 || p.Reliance != 0.3 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Style != "balanced" {
		t.Errorf("style = %q, want balanced", p.Style)
	}
}

func TestFromJSON_Roundtrip(t *testing.T) {
	p := Profile{KnowledgeLevel: 0.8, Engagement: 0.2, Fatigue: 0.4, Reliance: 0.9, Style: "visual"}
	got := FromJSON(p.ToJSON())
	if got != p {
		t.Errorf("roundtrip = %+v, want %+v", got, p)
	}
}

func TestFromJSON_MissingFieldsKeepDefaults(t *testing.T) {
	got := FromJSON([]byte(`{"knowledge_level":0.7}`))
	if got.KnowledgeLevel != 0.7 {
		t.Errorf("knowledge_level = %v, want 0.7", got.KnowledgeLevel)
	}
	if got.Engagement != 0.5 || got.Style != "balanced" {
		t.Errorf("absent fields should keep defaults: %+v", got)
	}
}

func TestFromJSON_MalformedDegradesToDefault(t *testing.T) {
	if got := FromJSON([]byte("not json")); got != Default() {
		t.Errorf("malformed blob = %+v, want defaults", got)
	}
	if got := FromJSON(nil); got != Default() {
		t.Errorf("nil blob = %+v, want defaults", got)
	}
}
