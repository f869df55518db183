package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/utils"
	"github.com/google/uuid"
)

// adminUsername is the bootstrap account seeded at startup. It cannot be
// deleted, blocked or demoted.
const adminUsername = "admin"

// UserService manages operator accounts.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
	audit    portssvc.AuditSvcFacade
	logger   *slog.Logger
}

// NewUserService creates the user account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *UserService {
	return &UserService{userRepo: userRepo, audit: audit, logger: logger}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser self-registers a new account. New accounts start pending and
// cannot log in until an admin approves them.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleUser,
		Status:       domain.UserPending,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	table := "usuarios"
	s.audit.Record(ctx, username, "REGISTRAR_USUARIO", &table, &user.UserID, nil)
	return &user, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers retrieves all users ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// UpdateUserStatus approves or blocks an account. The bootstrap admin cannot
// be touched.
func (s *UserService) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus, actorUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user.Username == adminUsername {
		return fmt.Errorf("%w: the admin account cannot be changed", apperrors.ErrForbidden)
	}

	if err := s.userRepo.UpdateUserStatus(ctx, userID, status); err != nil {
		return fmt.Errorf("failed to update status of user %s: %w", userID, err)
	}

	table := "usuarios"
	detail := string(status)
	s.audit.Record(ctx, actorUserID, "ALTERAR_STATUS_USUARIO", &table, &userID, &detail)
	return nil
}

// UpdateUserRole changes an account's role. The bootstrap admin cannot be
// demoted.
func (s *UserService) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, actorUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user.Username == adminUsername {
		return fmt.Errorf("%w: the admin account cannot be changed", apperrors.ErrForbidden)
	}

	if err := s.userRepo.UpdateUserRole(ctx, userID, role); err != nil {
		return fmt.Errorf("failed to update role of user %s: %w", userID, err)
	}

	table := "usuarios"
	detail := string(role)
	s.audit.Record(ctx, actorUserID, "ALTERAR_PAPEL_USUARIO", &table, &userID, &detail)
	return nil
}

// DeleteUser removes an account. The bootstrap admin cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, userID string, actorUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user.Username == adminUsername {
		return fmt.Errorf("%w: the admin account cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	table := "usuarios"
	s.audit.Record(ctx, actorUserID, "EXCLUIR_USUARIO", &table, &userID, nil)
	return nil
}

// EnsureAdminUser seeds the bootstrap admin account if it does not exist.
// Runs once at startup; the hash cannot be produced inside a migration.
func (s *UserService) EnsureAdminUser(ctx context.Context, password string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := "Administrador"
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     adminUsername,
		PasswordHash: hash,
		Name:         &name,
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// lost the race against a parallel instance, the account exists
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	s.logger.Info("admin account seeded", slog.String("username", adminUsername))
	return nil
}
