package store

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// #endregion

// #region create-user

// CreateUser inserts a credential row. The email is the primary key, so a
// duplicate registration fails at the database.
func (s *Store) CreateUser(email, passwordHash, learnerID string) error {
	_, err := s.db.Exec(
		`INSERT INTO users (email, password_hash, learner_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		email, passwordHash, learnerID, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// #endregion create-user

// #region get-user

// GetUser looks up a credential row by email.
func (s *Store) GetUser(email string) (passwordHash, learnerID string, found bool, err error) {
	err = s.db.QueryRow(
		`SELECT password_hash, learner_id FROM users WHERE email = ?`, email,
	).Scan(&passwordHash, &learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, fmt.Errorf("get user: %w", err)
	}
	return passwordHash, learnerID, true, nil
}

// #endregion get-user
