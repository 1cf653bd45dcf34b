package storage

import (
	"context"

	"github.com/iudanet/notekeeper/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Uniqueness of email and username is enforced by the storage itself,
	// so concurrent registrations cannot produce duplicates.
	// Returns ErrUserAlreadyExists on conflict.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email (login key)
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
