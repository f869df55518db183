package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/contafacil/honorarios_app/internal/utils"
)

// AuthService authenticates operators and issues access tokens.
type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config, logger *slog.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg, logger: logger}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login validates the credentials and returns a signed access token. Unknown
// usernames and wrong passwords both answer ErrInvalidCredentials so the
// response does not leak which accounts exist. Pending and blocked accounts
// cannot log in even with the right password.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", slog.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case domain.UserActive:
	case domain.UserPending:
		return nil, fmt.Errorf("%w: account awaiting approval", apperrors.ErrForbidden)
	default:
		return nil, fmt.Errorf("%w: account blocked", apperrors.ErrForbidden)
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, user.Username, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
