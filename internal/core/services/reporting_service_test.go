package services_test

import (
	"context"
	"testing"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	clientRepo    *MockClientRepository
	feeRepo       *MockFeeRepository
	receiptRepo   *MockReceiptRepository
	reportingRepo *MockReportingRepository
	service       *services.ReportingService
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.clientRepo = new(MockClientRepository)
	s.feeRepo = new(MockFeeRepository)
	s.receiptRepo = new(MockReceiptRepository)
	s.reportingRepo = new(MockReportingRepository)
	s.service = services.NewReportingService(s.clientRepo, s.feeRepo, s.receiptRepo, s.reportingRepo)
}

func fee(amount string, status domain.FeeStatus) domain.FeeRecord {
	return domain.FeeRecord{Amount: decimal.RequireFromString(amount), Status: status}
}

func (s *ReportingServiceTestSuite) TestClientReportTotals() {
	ctx := context.Background()
	s.clientRepo.On("FindClientByID", ctx, "c-1").Return(&domain.Client{ClientID: "c-1", Name: "ACME"}, nil).Once()
	s.feeRepo.On("ListFees", ctx, portsrepo.FeeFilter{ClientID: "c-1"}).Return([]domain.FeeRecord{
		fee("100.00", domain.FeePaid),
		fee("100.00", domain.FeePaid),
		fee("150.00", domain.FeePending),
	}, nil).Once()
	s.reportingRepo.On("GetClientYearSummaries", ctx, "c-1").Return([]domain.ClientYearSummary{}, nil).Once()
	s.receiptRepo.On("ListReceipts", ctx, portsrepo.ReceiptFilter{ClientID: "c-1"}).Return([]domain.Receipt{}, nil).Once()

	report, err := s.service.GetClientReport(ctx, "c-1")

	s.Require().NoError(err)
	s.True(report.TotalBilled.Equal(decimal.RequireFromString("350.00")), "billed %s", report.TotalBilled)
	s.True(report.TotalPaid.Equal(decimal.RequireFromString("200.00")), "paid %s", report.TotalPaid)
	s.True(report.OpenBalance.Equal(decimal.RequireFromString("150.00")), "open %s", report.OpenBalance)
}

func (s *ReportingServiceTestSuite) TestClientReportUnknownClient() {
	ctx := context.Background()
	s.clientRepo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetClientReport(ctx, "missing")

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.feeRepo.AssertNotCalled(s.T(), "ListFees")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
