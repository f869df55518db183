package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CertificateServiceTestSuite struct {
	suite.Suite
	clientRepo *MockClientRepository
	certRepo   *MockCertificateRepository
	audit      *MockAuditSvc
	service    *services.CertificateService
}

func (s *CertificateServiceTestSuite) SetupTest() {
	s.clientRepo = new(MockClientRepository)
	s.certRepo = new(MockCertificateRepository)
	s.audit = new(MockAuditSvc)
	s.service = services.NewCertificateService(s.clientRepo, s.certRepo, s.audit, discardLogger())

	s.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func baseCertRequest() dto.CreateCertificateRequest {
	issued := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreateCertificateRequest{
		Type:          "e-CNPJ",
		Category:      "A1",
		ValidityYears: 1,
		IssuedAt:      issued,
		ExpiresAt:     issued.AddDate(1, 0, 0),
		Amount:        decimal.RequireFromString("180.00"),
	}
}

func (s *CertificateServiceTestSuite) TestCreateCertificateForRegisteredClient() {
	ctx := context.Background()
	clientID := "c-1"
	req := baseCertRequest()
	req.ClientID = &clientID

	s.clientRepo.On("FindClientByID", ctx, "c-1").Return(&domain.Client{ClientID: "c-1"}, nil).Once()
	s.certRepo.On("SaveCertificate", ctx, mock.MatchedBy(func(c domain.Certificate) bool {
		return c.ClientID != nil && *c.ClientID == "c-1" &&
			c.Status == domain.CertificateActive && c.PaymentStatus == domain.FeePending
	})).Return(nil).Once()

	cert, err := s.service.CreateCertificate(ctx, req, "u-1")

	s.Require().NoError(err)
	s.Equal(domain.CertificateActive, cert.Status)
	s.certRepo.AssertExpectations(s.T())
}

func (s *CertificateServiceTestSuite) TestCreateCertificateRejectsAmbiguousBuyer() {
	ctx := context.Background()
	clientID, name := "c-1", "Comprador Avulso"

	// neither buyer field
	_, err := s.service.CreateCertificate(ctx, baseCertRequest(), "u-1")
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	// both buyer fields
	req := baseCertRequest()
	req.ClientID = &clientID
	req.StandaloneName = &name
	_, err = s.service.CreateCertificate(ctx, req, "u-1")
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	s.certRepo.AssertNotCalled(s.T(), "SaveCertificate")
}

func (s *CertificateServiceTestSuite) TestCreateCertificateRejectsInvertedDates() {
	ctx := context.Background()
	name := "Comprador Avulso"
	req := baseCertRequest()
	req.StandaloneName = &name
	req.ExpiresAt = req.IssuedAt.AddDate(0, 0, -1)

	_, err := s.service.CreateCertificate(ctx, req, "u-1")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *CertificateServiceTestSuite) TestFeeLinkedCertificateNeedsClientAndReference() {
	ctx := context.Background()
	name := "Comprador Avulso"
	req := baseCertRequest()
	req.StandaloneName = &name
	req.LinkedToFee = true

	_, err := s.service.CreateCertificate(ctx, req, "u-1")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.certRepo.AssertNotCalled(s.T(), "SaveCertificate")
}

func (s *CertificateServiceTestSuite) TestUpdateCertificateAppliesGivenFieldsOnly() {
	ctx := context.Background()
	note := "entregue em pendrive"
	existing := &domain.Certificate{
		CertificateID: "cert-1",
		Status:        domain.CertificateActive,
		PaymentStatus: domain.FeePending,
		Amount:        decimal.RequireFromString("180.00"),
	}
	paid := domain.FeePaid
	s.certRepo.On("FindCertificateByID", ctx, "cert-1").Return(existing, nil).Once()
	s.certRepo.On("UpdateCertificate", ctx, mock.MatchedBy(func(c domain.Certificate) bool {
		return c.PaymentStatus == domain.FeePaid && c.Status == domain.CertificateActive &&
			c.Note != nil && *c.Note == note
	})).Return(nil).Once()

	cert, err := s.service.UpdateCertificate(ctx, "cert-1", dto.UpdateCertificateRequest{
		PaymentStatus: &paid,
		Note:          &note,
	}, "u-1")

	s.Require().NoError(err)
	s.Equal(domain.FeePaid, cert.PaymentStatus)
	s.certRepo.AssertExpectations(s.T())
}

func (s *CertificateServiceTestSuite) TestListExpiringDefaultsWindow() {
	ctx := context.Background()
	s.certRepo.On("ListExpiringCertificates", ctx, 30).Return([]domain.Certificate{}, nil).Once()

	_, err := s.service.ListExpiringCertificates(ctx, 0)

	s.Require().NoError(err)
	s.certRepo.AssertExpectations(s.T())
}

func TestCertificateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceTestSuite))
}
