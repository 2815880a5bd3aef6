package store

// #region imports
import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS learners (
	learner_id   TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	profile_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	email         TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	learner_id    TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (learner_id) REFERENCES learners(learner_id)
);

CREATE TABLE IF NOT EXISTS interactions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id      TEXT NOT NULL,
	learner_id      TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	question        TEXT NOT NULL,
	context_json    TEXT NOT NULL,
	generator       TEXT NOT NULL,
	critic_raw      TEXT NOT NULL,
	final_answer    TEXT NOT NULL,
	socratic_q1     TEXT NOT NULL,
	socratic_q2     TEXT NOT NULL,
	answer_tokens   INTEGER NOT NULL,
	question_tokens INTEGER NOT NULL,
	reliance_score  REAL NOT NULL,
	difficulty      REAL NOT NULL,
	FOREIGN KEY (learner_id) REFERENCES learners(learner_id)
);

CREATE INDEX IF NOT EXISTS idx_interactions_learner
ON interactions(learner_id, created_at);

CREATE TABLE IF NOT EXISTS metrics (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	interaction_id   INTEGER NOT NULL,
	overlap          REAL NOT NULL,
	recall           REAL NOT NULL,
	perplexity_proxy REAL NOT NULL,
	meta_json        TEXT,
	FOREIGN KEY (interaction_id) REFERENCES interactions(id)
);

CREATE TABLE IF NOT EXISTS request_trace (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	learner_id  TEXT NOT NULL,
	stage       TEXT NOT NULL,
	model       TEXT,
	duration_ms INTEGER NOT NULL,
	error       TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_stats (
	day          TEXT PRIMARY KEY,
	interactions INTEGER NOT NULL,
	avg_reliance REAL NOT NULL,
	avg_overlap  REAL NOT NULL,
	avg_recall   REAL NOT NULL,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store manages tutor persistence in SQLite: learner profiles, credentials,
// the append-only interaction/metrics log, request traces, and rollups.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close
