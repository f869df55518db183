package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GenerationServiceTestSuite struct {
	suite.Suite
	clientRepo *MockClientRepository
	feeRepo    *MockFeeRepository
	amountRepo *MockFeeAmountRepository
	audit      *MockAuditSvc
	service    *services.GenerationService
}

func (s *GenerationServiceTestSuite) SetupTest() {
	s.clientRepo = new(MockClientRepository)
	s.feeRepo = new(MockFeeRepository)
	s.amountRepo = new(MockFeeAmountRepository)
	s.audit = new(MockAuditSvc)
	s.service = services.NewGenerationService(s.clientRepo, s.feeRepo, s.amountRepo, s.audit, discardLogger())

	s.feeRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.feeRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.feeRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func entry(clientID string, year int, amount string) portsrepo.YearlyAmountEntry {
	return portsrepo.YearlyAmountEntry{
		YearlyFeeAmount: domain.YearlyFeeAmount{
			ClientID: clientID,
			Year:     year,
			Amount:   decimal.RequireFromString(amount),
		},
	}
}

func (s *GenerationServiceTestSuite) TestGenerateAllTruncatesAtToday() {
	ctx := context.Background()
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	s.amountRepo.On("ListAllYearlyAmounts", ctx).Return([]portsrepo.YearlyAmountEntry{
		entry("c-past", 2024, "500.00"),
		entry("c-now", 2025, "600.00"),
		entry("c-future", 2026, "700.00"),
	}, nil).Once()

	created := map[string][]int{}
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.FeeRecord")).
		Run(func(args mock.Arguments) {
			f := args.Get(2).(domain.FeeRecord)
			s.Equal(domain.FeePending, f.Status)
			created[f.ClientID] = append(created[f.ClientID], f.MonthSlot)
		}).Return(true, nil)

	result, err := s.service.GenerateAll(ctx, today)

	s.Require().NoError(err)
	// past year gets all 12 months, current year stops at June, future none
	s.Len(created["c-past"], 12)
	s.Equal([]int{1, 2, 3, 4, 5, 6}, created["c-now"])
	s.NotContains(created, "c-future")
	s.Equal(18, result.Created)
	s.Equal(0, result.Skipped)
}

func (s *GenerationServiceTestSuite) TestGenerateAllSkipsExistingTuples() {
	ctx := context.Background()
	today := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.amountRepo.On("ListAllYearlyAmounts", ctx).Return([]portsrepo.YearlyAmountEntry{
		entry("c-1", 2025, "500.00"),
	}, nil).Once()

	// January already exists, February and March are new
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.MonthSlot == 1
	})).Return(false, nil).Once()
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Twice()

	result, err := s.service.GenerateAll(ctx, today)

	s.Require().NoError(err)
	s.Equal(2, result.Created)
	s.Equal(1, result.Skipped)
	s.feeRepo.AssertExpectations(s.T())
}

func (s *GenerationServiceTestSuite) TestGenerateCurrentMonthPrefersYearlyAmount() {
	ctx := context.Background()
	today := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)

	legacy := decimal.RequireFromString("300.00")
	clients := []domain.Client{
		{ClientID: "c-yearly", Name: "COM VALOR ANUAL", Active: true},
		{ClientID: "c-legacy", Name: "SO VALOR ANTIGO", Active: true, DefaultFeeAmount: &legacy},
		{ClientID: "c-none", Name: "SEM VALOR", Active: true},
	}
	s.clientRepo.On("ListClients", ctx, true).Return(clients, nil).Once()

	s.amountRepo.On("FindYearlyAmount", ctx, "c-yearly", 2025).
		Return(&domain.YearlyFeeAmount{ClientID: "c-yearly", Year: 2025, Amount: decimal.RequireFromString("800.00")}, nil).Once()
	s.amountRepo.On("FindYearlyAmount", ctx, "c-legacy", 2025).Return(nil, apperrors.ErrNotFound).Once()
	s.amountRepo.On("FindYearlyAmount", ctx, "c-none", 2025).Return(nil, apperrors.ErrNotFound).Once()

	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.ClientID == "c-yearly" && f.Year == 2025 && f.MonthSlot == 8 &&
			f.Amount.Equal(decimal.RequireFromString("800.00"))
	})).Return(true, nil).Once()
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.ClientID == "c-legacy" && f.Amount.Equal(legacy)
	})).Return(true, nil).Once()

	result, err := s.service.GenerateCurrentMonth(ctx, today)

	s.Require().NoError(err)
	// the client without any amount is skipped silently
	s.Equal(2, result.Created)
	s.Equal(0, result.Skipped)
	s.feeRepo.AssertExpectations(s.T())
	s.amountRepo.AssertExpectations(s.T())
}

func TestGenerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenerationServiceTestSuite))
}
