package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// ReportingRepository provides the read-only aggregations consumed by the
// report/document collaborators. No method here has side effects.
type ReportingRepository interface {
	// GetYearSummary aggregates the fee ledger for one year.
	GetYearSummary(ctx context.Context, year int) (*domain.YearSummary, error)

	// GetClientYearSummaries aggregates one client's fees per year, newest
	// year first.
	GetClientYearSummaries(ctx context.Context, clientID string) ([]domain.ClientYearSummary, error)

	// GetPaymentMethodTotals aggregates a year's paid fees by payment
	// method, largest total first. Fees without a recorded method group
	// under "Não informado".
	GetPaymentMethodTotals(ctx context.Context, year int) ([]domain.PaymentMethodTotal, error)

	// ListDueFees retrieves unpaid fees of the current and following month
	// slot, with client contact fields for notifications.
	ListDueFees(ctx context.Context, year, month int) ([]domain.DueFee, error)
}
