package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/password"
	"github.com/userhive/usersvc/internal/repository"
	"github.com/userhive/usersvc/internal/validation"
)

// UserUsecase runs the per-request pipeline for user CRUD:
// validate, deduplicate, hash, persist. The first failing step
// short-circuits with a typed error the handler maps to a status code.
type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (u *UserUsecase) List(ctx context.Context) ([]domain.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (u *UserUsecase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if errs := validation.ValidateUser(input.Name, input.Email, input.Password); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	// Fast-path duplicate check; the unique index on email is the
	// authority if a concurrent insert wins the race.
	existing, err := u.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (u *UserUsecase) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	errs := make(map[string]string)
	if input.Name != nil && !validation.ValidateName(*input.Name) {
		errs["name"] = validation.MsgNameRequired
	}
	if input.Email != nil && !validation.ValidateEmail(*input.Email) {
		errs["email"] = validation.MsgInvalidEmail
	}
	if input.Password != nil && !validation.ValidatePassword(*input.Password) {
		errs["password"] = validation.MsgWeakPassword
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	if input.Email != nil {
		existing, err := u.repo.FindByEmailExcluding(ctx, *input.Email, id)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("check email collision: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateEmail
		}
	}

	upd := repository.UserUpdate{Name: input.Name, Email: input.Email}
	if input.Password != nil {
		hash, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (u *UserUsecase) Delete(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}
