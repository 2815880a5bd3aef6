package store

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region types

// InteractionRecord is one chat turn. Created exactly once per successful
// pipeline run, immutable afterwards.
type InteractionRecord struct {
	ID             int64
	SessionID      string
	LearnerID      string
	CreatedAt      time.Time
	Question       string
	ContextJSON    string
	Generator      string
	CriticRaw      string
	FinalAnswer    string
	SocraticQ1     string
	SocraticQ2     string
	AnswerTokens   int
	QuestionTokens int
	RelianceScore  float64
	Difficulty     float64
}

// MetricsRecord holds the similarity scores for one interaction.
type MetricsRecord struct {
	Overlap    float64
	Recall     float64
	Perplexity float64
	MetaJSON   string
}

// #endregion types

// #region save

// SaveInteraction writes the interaction row and its metrics row in one
// transaction. Metrics always follow their interaction; a failure of either
// write rolls back both.
func (s *Store) SaveInteraction(rec InteractionRecord, met MetricsRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO interactions
		 (session_id, learner_id, created_at, question, context_json, generator,
		  critic_raw, final_answer, socratic_q1, socratic_q2, answer_tokens,
		  question_tokens, reliance_score, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.LearnerID, rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Question, rec.ContextJSON, rec.Generator, rec.CriticRaw,
		rec.FinalAnswer, rec.SocraticQ1, rec.SocraticQ2, rec.AnswerTokens,
		rec.QuestionTokens, rec.RelianceScore, rec.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("insert interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("interaction id: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO metrics (interaction_id, overlap, recall, perplexity_proxy, meta_json)
		 VALUES (?, ?, ?, ?, ?)`,
		id, met.Overlap, met.Recall, met.Perplexity, nullIfEmpty(met.MetaJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("insert metrics: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// #endregion save

// #region summaries

// InteractionSummary is a compact listing row for the inspect CLI.
type InteractionSummary struct {
	ID            int64   `json:"id"`
	LearnerID     string  `json:"learner_id"`
	CreatedAt     string  `json:"created_at"`
	Question      string  `json:"question"`
	RelianceScore float64 `json:"reliance_score"`
	Overlap       float64 `json:"overlap"`
	Recall        float64 `json:"recall"`
	Perplexity    float64 `json:"perplexity_proxy"`
}

// RecentInteractions lists the most recent interactions joined with metrics.
func (s *Store) RecentInteractions(limit int) ([]InteractionSummary, error) {
	rows, err := s.db.Query(
		`SELECT i.id, i.learner_id, i.created_at, i.question, i.reliance_score,
		        m.overlap, m.recall, m.perplexity_proxy
		 FROM interactions i
		 JOIN metrics m ON m.interaction_id = i.id
		 ORDER BY i.id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent interactions: %w", err)
	}
	defer rows.Close()

	var out []InteractionSummary
	for rows.Next() {
		var row InteractionSummary
		if err := rows.Scan(&row.ID, &row.LearnerID, &row.CreatedAt, &row.Question,
			&row.RelianceScore, &row.Overlap, &row.Recall, &row.Perplexity); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetInteraction reads one full interaction row by id.
func (s *Store) GetInteraction(id int64) (InteractionRecord, error) {
	var rec InteractionRecord
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, session_id, learner_id, created_at, question, context_json,
		        generator, critic_raw, final_answer, socratic_q1, socratic_q2,
		        answer_tokens, question_tokens, reliance_score, difficulty
		 FROM interactions WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.SessionID, &rec.LearnerID, &createdAt, &rec.Question,
		&rec.ContextJSON, &rec.Generator, &rec.CriticRaw, &rec.FinalAnswer,
		&rec.SocraticQ1, &rec.SocraticQ2, &rec.AnswerTokens, &rec.QuestionTokens,
		&rec.RelianceScore, &rec.Difficulty)
	if err != nil {
		return InteractionRecord{}, fmt.Errorf("get interaction %d: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return rec, nil
}

// GetMetrics reads the metrics row for one interaction.
func (s *Store) GetMetrics(interactionID int64) (MetricsRecord, error) {
	var met MetricsRecord
	var meta sql.NullString
	err := s.db.QueryRow(
		`SELECT overlap, recall, perplexity_proxy, meta_json
		 FROM metrics WHERE interaction_id = ?`, interactionID,
	).Scan(&met.Overlap, &met.Recall, &met.Perplexity, &meta)
	if err != nil {
		return MetricsRecord{}, fmt.Errorf("get metrics %d: %w", interactionID, err)
	}
	met.MetaJSON = meta.String
	return met, nil
}

// InteractionCount returns the number of interaction rows.
func (s *Store) InteractionCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("interaction count: %w", err)
	}
	return n, nil
}

// MetricsCount returns the number of metrics rows.
func (s *Store) MetricsCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM metrics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("metrics count: %w", err)
	}
	return n, nil
}

// #endregion summaries

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
