package store

// #region imports
import (
	"fmt"
	"time"
)

// #endregion

// #region trace-entry

// TraceEntry is one pipeline-stage record: which stage ran, against which
// model, how long it took, and how it failed if it did. Enough to
// reconstruct a request without re-running it.
type TraceEntry struct {
	LearnerID string
	Stage     string
	Model     string
	Duration  time.Duration
	Err       error
	CreatedAt time.Time
}

// #endregion trace-entry

// #region log-stage

// LogStage appends a trace row for a pipeline stage.
func (s *Store) LogStage(entry TraceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	errText := ""
	if entry.Err != nil {
		errText = entry.Err.Error()
	}

	_, err := s.db.Exec(
		`INSERT INTO request_trace (learner_id, stage, model, duration_ms, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.LearnerID, entry.Stage, nullIfEmpty(entry.Model),
		entry.Duration.Milliseconds(), nullIfEmpty(errText),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log stage: %w", err)
	}
	return nil
}

// #endregion log-stage
