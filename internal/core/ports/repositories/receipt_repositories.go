package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// ReceiptFilter narrows receipt listings; zero values mean "no filter".
type ReceiptFilter struct {
	ClientID string
	Year     int
}

// ReceiptReader defines read operations for receipts.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with the client fields document
	// renderers need.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.ReceiptWithClient, error)

	// ListReceipts retrieves receipts matching the filter, newest first.
	ListReceipts(ctx context.Context, filter ReceiptFilter) ([]domain.Receipt, error)

	// ReceiptExists reports whether a receipt already references the
	// (client, month, year) tuple.
	ReceiptExists(ctx context.Context, clientID string, month, year int) (bool, error)
}

// ReceiptWriter defines write operations for receipts.
type ReceiptWriter interface {
	// SaveReceipt persists a new receipt, assigning the next sequential
	// number inside the same transaction, and returns the assigned number.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) (int, error)
}

// ReceiptRepositoryFacade combines the receipt interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
