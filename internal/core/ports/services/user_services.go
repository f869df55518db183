package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/dto"
)

// UserSvcFacade defines the operations for operator accounts.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus, actorUserID string) error
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, actorUserID string) error
	DeleteUser(ctx context.Context, userID string, actorUserID string) error
}

// AuthSvcFacade authenticates operators and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
