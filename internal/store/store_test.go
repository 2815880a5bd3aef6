package store

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/socratic-tutor/internal/profile"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleInteraction(learnerID string) InteractionRecord {
	return InteractionRecord{
		SessionID:      "sess-1",
		LearnerID:      learnerID,
		Question:       "why is the sky blue?",
		ContextJSON:    `{"ctx":{"device":"unknown"},"hints":[]}`,
		Generator:      "draft answer",
		CriticRaw:      "not json",
		FinalAnswer:    "draft answer",
		SocraticQ1:     "q1",
		SocraticQ2:     "q2",
		AnswerTokens:   2,
		QuestionTokens: 5,
		RelianceScore:  0.4,
		Difficulty:     0.5,
	}
}

func TestEnsureLearner_Idempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
			t.Fatal(err)
		}
	}
	n, err := s.LearnerCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("learner count = %d, want 1", n)
	}
}

func TestEnsureLearner_DoesNotOverwrite(t *testing.T) {
	s := newTestStore(t)

	p := profile.Default()
	p.KnowledgeLevel = 0.9
	if err := s.EnsureLearner("learner-1", p); err != nil {
		t.Fatal(err)
	}
	// A second ensure with different values must be a no-op.
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}

	got, found, err := s.GetProfile("learner-1")
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if got.KnowledgeLevel != 0.9 {
		t.Errorf("knowledge_level = %v, want original 0.9", got.KnowledgeLevel)
	}
}

func TestGetProfile_AbsentIsDefault(t *testing.T) {
	s := newTestStore(t)
	p, found, err := s.GetProfile("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("found should be false for absent learner")
	}
	if p != profile.Default() {
		t.Errorf("absent profile = %+v, want defaults", p)
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}

	p := profile.Default()
	p.KnowledgeLevel = 0.7
	if err := s.UpdateProfile("learner-1", p); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.GetProfile("learner-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.KnowledgeLevel != 0.7 {
		t.Errorf("knowledge_level = %v, want 0.7", got.KnowledgeLevel)
	}

	if err := s.UpdateProfile("missing", p); err == nil {
		t.Error("updating a missing learner should fail")
	}
}

func TestSaveInteraction_WritesBothRows(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}

	id, err := s.SaveInteraction(sampleInteraction("learner-1"), MetricsRecord{
		Overlap: 1.0, Recall: 1.0, Perplexity: 2.0, MetaJSON: `{"note":"final vs generator"}`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Error("expected non-zero interaction id")
	}

	ic, _ := s.InteractionCount()
	mc, _ := s.MetricsCount()
	if ic != 1 || mc != 1 {
		t.Errorf("counts = %d interactions / %d metrics, want 1/1", ic, mc)
	}

	rec, err := s.GetInteraction(id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Question != "why is the sky blue?" || rec.FinalAnswer != "draft answer" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateUser("a@example.com", "hash", "learner-1"); err != nil {
		t.Fatal(err)
	}

	hash, learnerID, found, err := s.GetUser("a@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !found || hash != "hash" || learnerID != "learner-1" {
		t.Errorf("got %q %q found=%v", hash, learnerID, found)
	}

	if err := s.CreateUser("a@example.com", "other", "learner-1"); err == nil {
		t.Error("duplicate email insert should fail")
	}

	_, _, found, err = s.GetUser("nobody@example.com")
	if err != nil || found {
		t.Errorf("absent user: found=%v err=%v", found, err)
	}
}

func TestLearnerStats(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		rec := sampleInteraction("learner-1")
		rec.RelianceScore = 2.0
		if _, err := s.SaveInteraction(rec, MetricsRecord{Overlap: 0.5, Recall: 0.25}); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.GetLearnerStats("learner-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Interactions != 2 {
		t.Errorf("interactions = %d, want 2", stats.Interactions)
	}
	if stats.AvgReliance != 2.0 || stats.AvgOverlap != 0.5 || stats.AvgRecall != 0.25 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}

	empty, err := s.GetLearnerStats("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Interactions != 0 || empty.AvgReliance != 0 {
		t.Errorf("absent learner aggregates should be zero: %+v", empty)
	}
}

func TestRollupDaily(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLearner("learner-1", profile.Default()); err != nil {
		t.Fatal(err)
	}
	now := time.Now().UTC()
	rec := sampleInteraction("learner-1")
	rec.CreatedAt = now
	rec.RelianceScore = 3.0
	if _, err := s.SaveInteraction(rec, MetricsRecord{Overlap: 0.8, Recall: 0.6}); err != nil {
		t.Fatal(err)
	}

	if err := s.RollupDaily(now); err != nil {
		t.Fatal(err)
	}
	day, found, err := s.GetDailyStats(now.Format("2006-01-02"))
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if day.Interactions != 1 || day.AvgReliance != 3.0 {
		t.Errorf("unexpected rollup: %+v", day)
	}

	// Re-running the same day overwrites rather than duplicating.
	if err := s.RollupDaily(now); err != nil {
		t.Fatal(err)
	}
	day2, _, err := s.GetDailyStats(now.Format("2006-01-02"))
	if err != nil {
		t.Fatal(err)
	}
	if day2.Interactions != 1 {
		t.Errorf("rollup not idempotent: %+v", day2)
	}
}

func TestLogStage(t *testing.T) {
	s := newTestStore(t)
	err := s.LogStage(TraceEntry{
		LearnerID: "learner-1",
		Stage:     "generate",
		Model:     "model-a",
		Duration:  150 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM request_trace`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("trace rows = %d, want 1", n)
	}
}
