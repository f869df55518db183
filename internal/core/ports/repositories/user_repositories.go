package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// UserReader defines read operations for operator accounts.
type UserReader interface {
	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for operator accounts.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserStatus changes a user's status (approve/block).
	UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) error

	// UpdateUserRole changes a user's role.
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines the user interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
