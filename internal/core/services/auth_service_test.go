package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/contafacil/honorarios_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	cfg      *config.Config
	service  *services.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "honorarios-test",
	}
	s.service = services.NewAuthService(s.userRepo, s.cfg, discardLogger())
}

func (s *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &domain.User{
		UserID:       "u-1",
		Username:     "maria",
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	}
}

func (s *AuthServiceTestSuite) TestLoginIssuesTokenWithRole() {
	ctx := context.Background()
	user := s.activeUser("segredo123")
	s.userRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	resp, err := s.service.Login(ctx, dto.LoginRequest{Username: " Maria ", Password: "segredo123"})

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.True(resp.ExpiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(resp.Token, s.cfg.JWTSecret)
	s.Require().NoError(err)
	s.Equal("u-1", claims.Subject)
	s.Equal("maria", claims.Username)
	s.Equal(string(domain.RoleUser), claims.Role)
}

func (s *AuthServiceTestSuite) TestLoginRejectsWrongPassword() {
	ctx := context.Background()
	user := s.activeUser("segredo123")
	s.userRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "maria", Password: "errada"})

	s.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginHidesUnknownUsernames() {
	ctx := context.Background()
	s.userRepo.On("FindUserByUsername", ctx, "fantasma").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "fantasma", Password: "qualquer"})

	s.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginRejectsPendingAccount() {
	ctx := context.Background()
	user := s.activeUser("segredo123")
	user.Status = domain.UserPending
	s.userRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "maria", Password: "segredo123"})

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AuthServiceTestSuite) TestLoginRejectsBlockedAccount() {
	ctx := context.Background()
	user := s.activeUser("segredo123")
	user.Status = domain.UserBlocked
	s.userRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "maria", Password: "segredo123"})

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
