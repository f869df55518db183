package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/contafacil/honorarios_app/internal/dto"
)

// ReceiptSvcFacade defines the operations for issuing and reading receipts.
type ReceiptSvcFacade interface {
	// CreateReceipt issues a numbered receipt. When the request references a
	// (month, year) already covered by a receipt for the same client it
	// fails with apperrors.ErrDuplicate.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, actorUserID string) (*domain.Receipt, error)
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.ReceiptWithClient, error)
	ListReceipts(ctx context.Context, filter portsrepo.ReceiptFilter) ([]domain.Receipt, error)
}
