package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// ReportingSvcFacade defines the read-only aggregations consumed by the
// report, spreadsheet-export and e-mail collaborators.
type ReportingSvcFacade interface {
	GetYearSummary(ctx context.Context, year int) (*domain.YearSummary, error)
	GetClientReport(ctx context.Context, clientID string) (*domain.ClientReport, error)
	GetPaymentMethodTotals(ctx context.Context, year int) ([]domain.PaymentMethodTotal, error)
	ListDueFees(ctx context.Context, year, month int) ([]domain.DueFee, error)
}
