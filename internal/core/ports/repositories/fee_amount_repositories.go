package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// YearlyAmountEntry is one generator input row: the registered default
// amount for a (client, year) joined with the client fields the generator
// logs and filters on.
type YearlyAmountEntry struct {
	domain.YearlyFeeAmount
	ClientName   string
	ClientActive bool
}

// FeeAmountReader defines read operations for yearly default amounts.
type FeeAmountReader interface {
	// FindYearlyAmount retrieves the default amount for a (client, year),
	// or apperrors.ErrNotFound.
	FindYearlyAmount(ctx context.Context, clientID string, year int) (*domain.YearlyFeeAmount, error)

	// ListYearlyAmounts retrieves all registered amounts of one client,
	// ordered by year.
	ListYearlyAmounts(ctx context.Context, clientID string) ([]domain.YearlyFeeAmount, error)

	// ListAllYearlyAmounts retrieves every (client, year, amount) triple on
	// file, ordered by client then year. This is the generator's worklist.
	ListAllYearlyAmounts(ctx context.Context) ([]YearlyAmountEntry, error)
}

// FeeAmountWriter defines write operations for yearly default amounts.
type FeeAmountWriter interface {
	// UpsertYearlyAmount registers the default amount for a (client, year),
	// overwriting a previous registration (last write wins).
	UpsertYearlyAmount(ctx context.Context, amount domain.YearlyFeeAmount) error
}

// FeeAmountRepositoryFacade combines the yearly amount interfaces.
type FeeAmountRepositoryFacade interface {
	FeeAmountReader
	FeeAmountWriter
}
