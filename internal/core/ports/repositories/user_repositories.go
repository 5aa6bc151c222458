package repositories

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, including inactive users so
	// callers can distinguish "deactivated" from "unknown".
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a page of users ordered by creation time.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user *domain.User) error

	// UpdateUser updates a user's profile fields, role and password hash.
	UpdateUser(ctx context.Context, user *domain.User) error

	// MarkUserLastLogin records a successful login time.
	MarkUserLastLogin(ctx context.Context, userID string, loginAt time.Time) error

	// DeactivateUser marks a user as inactive.
	DeactivateUser(ctx context.Context, userID string, updatedBy string, updatedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
