package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/email"
	"github.com/userhive/usersvc/internal/password"
	"github.com/userhive/usersvc/internal/repository"
)

// tokenIssuer is the subset of token.Service the auth usecase needs.
type tokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type AuthUsecase struct {
	users  *UserUsecase
	repo   repository.UserRepository
	tokens tokenIssuer
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users *UserUsecase, repo repository.UserRepository, tokens tokenIssuer, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		repo:   repo,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Register runs the same create pipeline as user creation, then issues a
// token. The welcome email is best-effort: a send failure is logged and
// never fails the registration.
func (a *AuthUsecase) Register(ctx context.Context, input CreateUserInput) (*domain.User, string, error) {
	user, err := a.users.Create(ctx, input)
	if err != nil {
		return nil, "", err
	}

	signed, err := a.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	subject := "Welcome!"
	body := fmt.Sprintf("<p>Hi %s, your account has been created.</p>", user.Name)
	if err := a.email.Send(ctx, user.Email, subject, body); err != nil {
		a.logger.Error("send welcome email", "error", err)
	}

	return user, signed, nil
}

// Login verifies the credentials and returns the user with a fresh token.
// A missing user and a wrong password both map to ErrInvalidCredentials
// so the response does not reveal which one it was.
func (a *AuthUsecase) Login(ctx context.Context, emailAddr, plain string) (*domain.User, string, error) {
	user, err := a.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user by email: %w", err)
	}

	if !password.Compare(plain, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := a.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, signed, nil
}
