package repository

import (
	"context"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// UserRepository defines storage operations for user accounts.
type UserRepository interface {
	// FindByID looks up a user by id, returning ErrNotFound if absent.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// FindByEmail looks up a user by email, returning ErrNotFound if
	// absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Save inserts the user (or updates it when ID is already set).
	// Returns ErrDuplicateEntry on a unique-constraint violation.
	Save(ctx context.Context, user *domain.User) error

	// Update applies only the given column/value pairs to the user.
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
}
