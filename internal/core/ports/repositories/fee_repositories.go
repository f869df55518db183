package repositories

import (
	"context"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FeeFilter narrows fee listings; zero values mean "no filter".
type FeeFilter struct {
	Year     int
	ClientID string
	Status   domain.FeeStatus
}

// FeeReader defines read operations for the fee ledger.
type FeeReader interface {
	// FindFeeByID retrieves a single fee record.
	FindFeeByID(ctx context.Context, feeID string) (*domain.FeeRecord, error)

	// ListFees retrieves fee records matching the filter, newest first.
	ListFees(ctx context.Context, filter FeeFilter) ([]domain.FeeRecord, error)
}

// FeeWriter defines write operations for the fee ledger.
type FeeWriter interface {
	// SaveFee persists a new fee record. Returns apperrors.ErrDuplicate if
	// the (client, year, month slot) tuple already exists.
	SaveFee(ctx context.Context, fee domain.FeeRecord) error

	// MarkFeePaid transitions a fee record to PAGO.
	MarkFeePaid(ctx context.Context, feeID string, paymentDate time.Time, paymentMethod *string) error
}

// FeeTupleWriter defines the tuple-keyed, transaction-scoped writes the
// reconciler and generator are built on. All of them key on the natural
// (client, year, month slot) tuple rather than the synthetic id.
type FeeTupleWriter interface {
	// InsertFeeIfAbsentInTx inserts a fee record unless its tuple already
	// exists, reporting whether a row was created. Existing rows are never
	// modified.
	InsertFeeIfAbsentInTx(ctx context.Context, tx pgx.Tx, fee domain.FeeRecord) (bool, error)

	// MarkTuplePaidInTx updates the tuple's row to PAGO with the given
	// amount, payment date and method, reporting whether a row matched.
	MarkTuplePaidInTx(ctx context.Context, tx pgx.Tx, clientID string, year, monthSlot int, amount decimal.Decimal, paymentDate *time.Time, paymentMethod *string) (bool, error)
}

// FeeRepositoryFacade combines all fee repository interfaces.
type FeeRepositoryFacade interface {
	FeeReader
	FeeWriter
	FeeTupleWriter
}

// FeeRepositoryWithTx extends the facade with transaction capabilities.
type FeeRepositoryWithTx interface {
	FeeRepositoryFacade
	TransactionManager
}
