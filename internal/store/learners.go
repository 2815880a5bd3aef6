package store

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielpatrickdp/socratic-tutor/internal/profile"
)

// #endregion

// #region get-profile

// GetProfile fetches a learner's stored profile. found is false when no row
// exists; callers treat that as the default profile.
func (s *Store) GetProfile(learnerID string) (profile.Profile, bool, error) {
	var raw string
	err := s.db.QueryRow(
		`SELECT profile_json FROM learners WHERE learner_id = ?`, learnerID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Default(), false, nil
	}
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	return profile.FromJSON([]byte(raw)), true, nil
}

// #endregion get-profile

// #region ensure-learner

// EnsureLearner inserts a learner row if absent. The insert is idempotent:
// two concurrent requests for the same new learner id both succeed, the
// second insert is a no-op. No application-level locking.
func (s *Store) EnsureLearner(learnerID string, p profile.Profile) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO learners (learner_id, created_at, profile_json)
		 VALUES (?, ?, ?)`,
		learnerID, time.Now().UTC().Format(time.RFC3339Nano), string(p.ToJSON()),
	)
	if err != nil {
		return fmt.Errorf("ensure learner: %w", err)
	}
	return nil
}

// #endregion ensure-learner

// #region update-profile

// UpdateProfile overwrites a learner's stored profile. Last writer wins.
func (s *Store) UpdateProfile(learnerID string, p profile.Profile) error {
	res, err := s.db.Exec(
		`UPDATE learners SET profile_json = ? WHERE learner_id = ?`,
		string(p.ToJSON()), learnerID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update profile: learner %s not found", learnerID)
	}
	return nil
}

// #endregion update-profile

// #region count

// LearnerCount returns the number of learner rows.
func (s *Store) LearnerCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM learners`).Scan(&n); err != nil {
		return 0, fmt.Errorf("learner count: %w", err)
	}
	return n, nil
}

// #endregion count
