package services

import (
	"context"
	"fmt"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService assembles the read-only aggregations.
type ReportingService struct {
	clientRepo    portsrepo.ClientRepositoryFacade
	feeRepo       portsrepo.FeeRepositoryFacade
	receiptRepo   portsrepo.ReceiptRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(clientRepo portsrepo.ClientRepositoryFacade, feeRepo portsrepo.FeeRepositoryFacade, receiptRepo portsrepo.ReceiptRepositoryFacade, reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{
		clientRepo:    clientRepo,
		feeRepo:       feeRepo,
		receiptRepo:   receiptRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetYearSummary aggregates the fee ledger for one year.
func (s *ReportingService) GetYearSummary(ctx context.Context, year int) (*domain.YearSummary, error) {
	return s.reportingRepo.GetYearSummary(ctx, year)
}

// GetClientReport assembles the full statement for one client: the client
// record, every fee, the per-year rollups, the issued receipts and the
// overall billed/paid/open totals.
func (s *ReportingService) GetClientReport(ctx context.Context, clientID string) (*domain.ClientReport, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s for report: %w", clientID, err)
	}

	fees, err := s.feeRepo.ListFees(ctx, portsrepo.FeeFilter{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list fees for report: %w", err)
	}

	yearSummaries, err := s.reportingRepo.GetClientYearSummaries(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate years for report: %w", err)
	}

	receipts, err := s.receiptRepo.ListReceipts(ctx, portsrepo.ReceiptFilter{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts for report: %w", err)
	}

	totalBilled := decimal.Zero
	totalPaid := decimal.Zero
	for _, fee := range fees {
		totalBilled = totalBilled.Add(fee.Amount)
		if fee.Status == domain.FeePaid {
			totalPaid = totalPaid.Add(fee.Amount)
		}
	}

	return &domain.ClientReport{
		Client:      *client,
		Fees:        fees,
		YearSummary: yearSummaries,
		Receipts:    receipts,
		TotalBilled: totalBilled,
		TotalPaid:   totalPaid,
		OpenBalance: totalBilled.Sub(totalPaid),
	}, nil
}

// GetPaymentMethodTotals aggregates a year's paid fees by payment method.
func (s *ReportingService) GetPaymentMethodTotals(ctx context.Context, year int) ([]domain.PaymentMethodTotal, error) {
	return s.reportingRepo.GetPaymentMethodTotals(ctx, year)
}

// ListDueFees retrieves the unpaid fees due around (year, month) with client
// contact fields.
func (s *ReportingService) ListDueFees(ctx context.Context, year, month int) ([]domain.DueFee, error) {
	return s.reportingRepo.ListDueFees(ctx, year, month)
}
