package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/google/uuid"
)

// ReceiptService issues sequentially numbered receipts.
type ReceiptService struct {
	clientRepo  portsrepo.ClientRepositoryFacade
	receiptRepo portsrepo.ReceiptRepositoryFacade
	audit       portssvc.AuditSvcFacade
	logger      *slog.Logger
}

// NewReceiptService creates the receipt service.
func NewReceiptService(clientRepo portsrepo.ClientRepositoryFacade, receiptRepo portsrepo.ReceiptRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *ReceiptService {
	return &ReceiptService{clientRepo: clientRepo, receiptRepo: receiptRepo, audit: audit, logger: logger}
}

var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

// CreateReceipt issues a numbered receipt. A (client, month, year) already
// covered by a receipt is rejected with ErrDuplicate so the office never
// hands out two receipts for the same charge.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, actorUserID string) (*domain.Receipt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to verify client %s: %w", req.ClientID, err)
	}

	if req.ReferenceMonth != nil && req.ReferenceYear != nil {
		exists, err := s.receiptRepo.ReceiptExists(ctx, req.ClientID, *req.ReferenceMonth, *req.ReferenceYear)
		if err != nil {
			return nil, fmt.Errorf("failed to check receipt duplicates: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: receipt already issued for %d/%d", apperrors.ErrDuplicate, *req.ReferenceMonth, *req.ReferenceYear)
		}
	}

	receipt := domain.Receipt{
		ReceiptID:      uuid.NewString(),
		ClientID:       req.ClientID,
		Amount:         req.Amount,
		Description:    req.Description,
		ReferenceMonth: req.ReferenceMonth,
		ReferenceYear:  req.ReferenceYear,
		IssuedAt:       time.Now(),
	}
	number, err := s.receiptRepo.SaveReceipt(ctx, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue receipt: %w", err)
	}
	receipt.Number = number

	table := "recibos"
	detail := fmt.Sprintf("numero=%d cliente=%s", number, req.ClientID)
	s.audit.Record(ctx, actorUserID, "EMITIR_RECIBO", &table, &receipt.ReceiptID, &detail)
	return &receipt, nil
}

// GetReceiptByID retrieves a receipt with the joined client fields.
func (s *ReceiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.ReceiptWithClient, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", receiptID, err)
	}
	return receipt, nil
}

// ListReceipts retrieves receipts matching the filter.
func (s *ReceiptService) ListReceipts(ctx context.Context, filter portsrepo.ReceiptFilter) ([]domain.Receipt, error) {
	return s.receiptRepo.ListReceipts(ctx, filter)
}
