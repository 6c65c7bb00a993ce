package repository

import (
	"context"

	"github.com/userhive/usersvc/internal/domain"
)

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailExcluding looks up a user by email ignoring the record
	// with the given ID, for collision checks during updates.
	FindByEmailExcluding(ctx context.Context, email, excludeID string) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// Delete removes the user and returns the deleted snapshot.
	Delete(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
