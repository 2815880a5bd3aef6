package auth

// #region imports
import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielpatrickdp/socratic-tutor/internal/profile"
	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

// #endregion

// #region errors

var (
	// ErrEmailTaken reports a duplicate registration.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and bad password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields reports an empty email or password.
	ErrMissingFields = errors.New("email and password required")
)

// #endregion errors

// #region service

// Service handles registration and login against the credential store.
type Service struct {
	store *store.Store
}

// NewService creates an auth service over the given store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// #endregion service

// #region register

// Register creates a credential row and its learner record, returning the
// new learner id. The learner insert is idempotent; the credential insert
// fails on duplicate email.
func (s *Service) Register(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	_, _, found, err := s.store.GetUser(email)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if found {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("register: hash password: %w", err)
	}

	learnerID := uuid.New().String()
	if err := s.store.EnsureLearner(learnerID, profile.Default()); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if err := s.store.CreateUser(email, string(hash), learnerID); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return learnerID, nil
}

// #endregion register

// #region login

// Login verifies credentials and returns the learner id.
func (s *Service) Login(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	hash, learnerID, found, err := s.store.GetUser(email)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !found {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return learnerID, nil
}

// #endregion login
