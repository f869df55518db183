package services_test

import (
	"context"
	"testing"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	clientRepo  *MockClientRepository
	receiptRepo *MockReceiptRepository
	audit       *MockAuditSvc
	service     *services.ReceiptService
}

func (s *ReceiptServiceTestSuite) SetupTest() {
	s.clientRepo = new(MockClientRepository)
	s.receiptRepo = new(MockReceiptRepository)
	s.audit = new(MockAuditSvc)
	s.service = services.NewReceiptService(s.clientRepo, s.receiptRepo, s.audit, discardLogger())

	s.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (s *ReceiptServiceTestSuite) TestCreateReceiptAssignsNumber() {
	ctx := context.Background()
	month, year := 3, 2025
	s.clientRepo.On("FindClientByID", ctx, "c-1").Return(&domain.Client{ClientID: "c-1"}, nil).Once()
	s.receiptRepo.On("ReceiptExists", ctx, "c-1", month, year).Return(false, nil).Once()
	s.receiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.ClientID == "c-1" && r.ReceiptID != "" && !r.IssuedAt.IsZero()
	})).Return(42, nil).Once()

	receipt, err := s.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		ClientID:       "c-1",
		Amount:         decimal.RequireFromString("645.00"),
		Description:    "Honorários contábeis março/2025",
		ReferenceMonth: &month,
		ReferenceYear:  &year,
	}, "u-1")

	s.Require().NoError(err)
	s.Equal(42, receipt.Number)
	s.receiptRepo.AssertExpectations(s.T())
}

func (s *ReceiptServiceTestSuite) TestCreateReceiptRejectsDuplicateReference() {
	ctx := context.Background()
	month, year := 3, 2025
	s.clientRepo.On("FindClientByID", ctx, "c-1").Return(&domain.Client{ClientID: "c-1"}, nil).Once()
	s.receiptRepo.On("ReceiptExists", ctx, "c-1", month, year).Return(true, nil).Once()

	_, err := s.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		ClientID:       "c-1",
		Amount:         decimal.RequireFromString("645.00"),
		ReferenceMonth: &month,
		ReferenceYear:  &year,
	}, "u-1")

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
	s.receiptRepo.AssertNotCalled(s.T(), "SaveReceipt")
}

func (s *ReceiptServiceTestSuite) TestCreateReceiptWithoutReferenceSkipsDuplicateCheck() {
	ctx := context.Background()
	s.clientRepo.On("FindClientByID", ctx, "c-1").Return(&domain.Client{ClientID: "c-1"}, nil).Once()
	s.receiptRepo.On("SaveReceipt", ctx, mock.Anything).Return(7, nil).Once()

	receipt, err := s.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		ClientID:    "c-1",
		Amount:      decimal.RequireFromString("120.00"),
		Description: "Serviço avulso",
	}, "u-1")

	s.Require().NoError(err)
	s.Equal(7, receipt.Number)
	s.receiptRepo.AssertNotCalled(s.T(), "ReceiptExists")
}

func (s *ReceiptServiceTestSuite) TestCreateReceiptRejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := s.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		ClientID: "c-1",
		Amount:   decimal.Zero,
	}, "u-1")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.clientRepo.AssertNotCalled(s.T(), "FindClientByID")
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
