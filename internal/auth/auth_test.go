package auth

import (
	"errors"
	"testing"

	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	learnerID, err := svc.Register("a@example.com", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if learnerID == "" {
		t.Fatal("expected a learner id")
	}

	got, err := svc.Login("a@example.com", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if got != learnerID {
		t.Errorf("login learner id = %q, want %q", got, learnerID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register("a@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register("a@example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_EmailNormalized(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register("  A@Example.COM ", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Login("a@example.com", "pw"); err != nil {
		t.Errorf("normalized login failed: %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register("", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("err = %v, want ErrMissingFields", err)
	}
	if _, err := svc.Register("a@example.com", ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("err = %v, want ErrMissingFields", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register("a@example.com", "right"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Login("a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Login("nobody@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
