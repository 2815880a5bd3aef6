package orchestrator

import (
	"testing"
)

func TestParseCriticReview_PlainText(t *testing.T) {
	_, ok := ParseCriticReview("This looks fine to me, no JSON here.")
	if ok {
		t.Error("plain text should not parse")
	}
}

func TestParseCriticReview_EmbeddedJSON(t *testing.T) {
	raw := "Here is my review:\n{\"score\": 85, \"issues\": [\"minor typo\"], \"edits\": \"better answer\"}"
	review, ok := ParseCriticReview(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if review.Score == nil || *review.Score != 85 {
		t.Errorf("score = %v, want 85", review.Score)
	}
	if review.Edits != "better answer" {
		t.Errorf("edits = %q", review.Edits)
	}
	if len(review.Issues) != 1 || review.Issues[0] != "minor typo" {
		t.Errorf("issues = %v", review.Issues)
	}
}

func TestParseCriticReview_MissingFields(t *testing.T) {
	review, ok := ParseCriticReview(`{"issues": []}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if review.Score != nil {
		t.Errorf("score should be nil, got %v", *review.Score)
	}
	if review.Edits != "" {
		t.Errorf("edits should be empty, got %q", review.Edits)
	}
}

func TestParseCriticReview_MalformedSpan(t *testing.T) {
	_, ok := ParseCriticReview("prefix {not valid json} suffix")
	if ok {
		t.Error("malformed span should not parse")
	}
}

func TestParseCriticReview_Empty(t *testing.T) {
	if _, ok := ParseCriticReview(""); ok {
		t.Error("empty input should not parse")
	}
}
