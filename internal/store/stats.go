package store

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// #endregion

// #region learner-stats

// LearnerStats are per-learner aggregates for the stats endpoint.
type LearnerStats struct {
	LearnerID    string  `json:"learner_id"`
	Interactions int     `json:"interactions"`
	AvgReliance  float64 `json:"avg_reliance"`
	AvgOverlap   float64 `json:"avg_overlap"`
	AvgRecall    float64 `json:"avg_recall"`
}

// GetLearnerStats aggregates a learner's interaction history. A learner
// with no interactions gets zeroed aggregates, not an error.
func (s *Store) GetLearnerStats(learnerID string) (LearnerStats, error) {
	stats := LearnerStats{LearnerID: learnerID}
	err := s.db.QueryRow(
		`SELECT COUNT(i.id),
		        COALESCE(AVG(i.reliance_score), 0),
		        COALESCE(AVG(m.overlap), 0),
		        COALESCE(AVG(m.recall), 0)
		 FROM interactions i
		 JOIN metrics m ON m.interaction_id = i.id
		 WHERE i.learner_id = ?`, learnerID,
	).Scan(&stats.Interactions, &stats.AvgReliance, &stats.AvgOverlap, &stats.AvgRecall)
	if err != nil {
		return LearnerStats{}, fmt.Errorf("learner stats: %w", err)
	}
	return stats, nil
}

// #endregion learner-stats

// #region rollup

// RollupDaily upserts the aggregate row for the given day (UTC). Re-running
// the rollup for the same day overwrites the previous aggregates.
func (s *Store) RollupDaily(day time.Time) error {
	dayKey := day.UTC().Format("2006-01-02")

	var count int
	var avgReliance, avgOverlap, avgRecall float64
	err := s.db.QueryRow(
		`SELECT COUNT(i.id),
		        COALESCE(AVG(i.reliance_score), 0),
		        COALESCE(AVG(m.overlap), 0),
		        COALESCE(AVG(m.recall), 0)
		 FROM interactions i
		 JOIN metrics m ON m.interaction_id = i.id
		 WHERE substr(i.created_at, 1, 10) = ?`, dayKey,
	).Scan(&count, &avgReliance, &avgOverlap, &avgRecall)
	if err != nil {
		return fmt.Errorf("rollup aggregate: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO daily_stats (day, interactions, avg_reliance, avg_overlap, avg_recall, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET
		   interactions = excluded.interactions,
		   avg_reliance = excluded.avg_reliance,
		   avg_overlap  = excluded.avg_overlap,
		   avg_recall   = excluded.avg_recall,
		   created_at   = excluded.created_at`,
		dayKey, count, avgReliance, avgOverlap, avgRecall,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("rollup upsert: %w", err)
	}
	return nil
}

// DailyStats is one rolled-up day.
type DailyStats struct {
	Day          string  `json:"day"`
	Interactions int     `json:"interactions"`
	AvgReliance  float64 `json:"avg_reliance"`
	AvgOverlap   float64 `json:"avg_overlap"`
	AvgRecall    float64 `json:"avg_recall"`
}

// GetDailyStats reads the rollup row for a day key (YYYY-MM-DD).
func (s *Store) GetDailyStats(dayKey string) (DailyStats, bool, error) {
	var d DailyStats
	err := s.db.QueryRow(
		`SELECT day, interactions, avg_reliance, avg_overlap, avg_recall
		 FROM daily_stats WHERE day = ?`, dayKey,
	).Scan(&d.Day, &d.Interactions, &d.AvgReliance, &d.AvgOverlap, &d.AvgRecall)
	if errors.Is(err, sql.ErrNoRows) {
		return DailyStats{}, false, nil
	}
	if err != nil {
		return DailyStats{}, false, fmt.Errorf("get daily stats: %w", err)
	}
	return d, true, nil
}

// #endregion rollup
