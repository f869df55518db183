package services

import (
	"context"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/contafacil/honorarios_app/internal/dto"
)

// FeeSvcFacade defines the operations for managing individual fee records
// and yearly default amounts.
type FeeSvcFacade interface {
	CreateFee(ctx context.Context, req dto.CreateFeeRequest, creatorUserID string) (*domain.FeeRecord, error)
	GetFeeByID(ctx context.Context, feeID string) (*domain.FeeRecord, error)
	ListFees(ctx context.Context, filter portsrepo.FeeFilter) ([]domain.FeeRecord, error)
	MarkFeePaid(ctx context.Context, feeID string, req dto.MarkFeePaidRequest, actorUserID string) error

	SetYearlyAmount(ctx context.Context, clientID string, req dto.SetYearlyAmountRequest, actorUserID string) error
	ListYearlyAmounts(ctx context.Context, clientID string) ([]domain.YearlyFeeAmount, error)

	// CreateYearFees registers the yearly amount and creates the year's
	// missing monthly PENDING records for one client.
	CreateYearFees(ctx context.Context, clientID string, req dto.CreateYearFeesRequest, actorUserID string) (*dto.GenerationResult, error)
}

// GenerationSvcFacade defines the pending-fee generation runs.
type GenerationSvcFacade interface {
	// GenerateAll materializes PENDING records for every registered
	// (client, year) default amount, truncated at today's year/month.
	GenerateAll(ctx context.Context, today time.Time) (*dto.GenerationResult, error)

	// GenerateCurrentMonth creates the current month's PENDING record for
	// every active client, falling back to the legacy per-client default
	// amount when the year has no registered amount.
	GenerateCurrentMonth(ctx context.Context, today time.Time) (*dto.GenerationResult, error)
}

// ImportSvcFacade defines the spreadsheet reconciliation runs.
type ImportSvcFacade interface {
	// ImportSheet reconciles the raw rows of one yearly sheet against the
	// ledger. Row failures accumulate in the result instead of aborting.
	ImportSheet(ctx context.Context, rows [][]string, sheet string, year int) (*dto.ImportRunResult, error)
}
