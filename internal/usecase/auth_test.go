package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/password"
	"github.com/userhive/usersvc/internal/usecase"
)

// ---- fakes ----

type fakeTokenIssuer struct {
	issue func(user *domain.User) (string, error)
}

func (f *fakeTokenIssuer) Issue(user *domain.User) (string, error) {
	return f.issue(user)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

const fakeJWT = "header.payload.signature"

func newAuthUsecase(repo *fakeUserRepo, sender *fakeEmailSender) *usecase.AuthUsecase {
	if sender == nil {
		sender = &fakeEmailSender{send: func(_ context.Context, _, _, _ string) error { return nil }}
	}
	tokens := &fakeTokenIssuer{issue: func(_ *domain.User) (string, error) { return fakeJWT, nil }}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return usecase.NewAuthUsecase(usecase.NewUserUsecase(repo), repo, tokens, sender, logger)
}

// ---- Register ----

func TestRegister_Success_ReturnsUserAndToken(t *testing.T) {
	a := newAuthUsecase(noUserRepo(), nil)

	user, signed, err := a.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "john@example.com" {
		t.Errorf("email = %q", user.Email)
	}
	if signed != fakeJWT {
		t.Errorf("token = %q, want %q", signed, fakeJWT)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := noUserRepo()
	repo.findByEmail = func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: testUserID, Email: email}, nil
	}

	a := newAuthUsecase(repo, nil)
	_, _, err := a.Register(context.Background(), validInput())
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegister_SendsWelcomeEmail(t *testing.T) {
	var sentTo string
	sender := &fakeEmailSender{
		send: func(_ context.Context, to, _, _ string) error {
			sentTo = to
			return nil
		},
	}

	a := newAuthUsecase(noUserRepo(), sender)
	_, _, err := a.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if sentTo != "john@example.com" {
		t.Errorf("welcome email sent to %q", sentTo)
	}
}

func TestRegister_EmailFailure_DoesNotFailRequest(t *testing.T) {
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp down")
		},
	}

	a := newAuthUsecase(noUserRepo(), sender)
	_, signed, err := a.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register must succeed despite email failure: %v", err)
	}
	if signed == "" {
		t.Error("expected a token")
	}
}

// ---- Login ----

func withStoredUser(t *testing.T, plain string) *fakeUserRepo {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := noUserRepo()
	repo.findByEmail = func(_ context.Context, email string) (*domain.User, error) {
		if email != "john@example.com" {
			return nil, domain.ErrUserNotFound
		}
		return &domain.User{ID: testUserID, Email: email, PasswordHash: hash}, nil
	}
	return repo
}

func TestLogin_Success(t *testing.T) {
	a := newAuthUsecase(withStoredUser(t, "Password123!"), nil)

	user, signed, err := a.Login(context.Background(), "john@example.com", "Password123!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != testUserID {
		t.Errorf("user ID = %q", user.ID)
	}
	if signed != fakeJWT {
		t.Errorf("token = %q", signed)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newAuthUsecase(withStoredUser(t, "Password123!"), nil)

	_, _, err := a.Login(context.Background(), "john@example.com", "WrongPass99!")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	a := newAuthUsecase(withStoredUser(t, "Password123!"), nil)

	_, _, err := a.Login(context.Background(), "nobody@example.com", "Password123!")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
