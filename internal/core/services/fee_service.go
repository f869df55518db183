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

// FeeService manages individual fee records and the per-year default amounts.
type FeeService struct {
	clientRepo portsrepo.ClientRepositoryFacade
	feeRepo    portsrepo.FeeRepositoryWithTx
	amountRepo portsrepo.FeeAmountRepositoryFacade
	audit      portssvc.AuditSvcFacade
	logger     *slog.Logger
}

// NewFeeService creates the fee ledger service.
func NewFeeService(clientRepo portsrepo.ClientRepositoryFacade, feeRepo portsrepo.FeeRepositoryWithTx, amountRepo portsrepo.FeeAmountRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *FeeService {
	return &FeeService{
		clientRepo: clientRepo,
		feeRepo:    feeRepo,
		amountRepo: amountRepo,
		audit:      audit,
		logger:     logger,
	}
}

var _ portssvc.FeeSvcFacade = (*FeeService)(nil)

// CreateFee registers one fee record manually. The (client, year, month slot)
// tuple must not exist yet.
func (s *FeeService) CreateFee(ctx context.Context, req dto.CreateFeeRequest, creatorUserID string) (*domain.FeeRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to verify client %s: %w", req.ClientID, err)
	}

	fee := domain.FeeRecord{
		FeeID:     uuid.NewString(),
		ClientID:  req.ClientID,
		Year:      req.Year,
		MonthSlot: req.MonthSlot,
		Amount:    req.Amount,
		Status:    domain.FeePending,
		DueDate:   req.DueDate,
		Note:      req.Note,
	}
	if err := s.feeRepo.SaveFee(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to create fee: %w", err)
	}

	table := "honorarios"
	detail := fmt.Sprintf("cliente=%s %d/%d", req.ClientID, req.MonthSlot, req.Year)
	s.audit.Record(ctx, creatorUserID, "CRIAR_HONORARIO", &table, &fee.FeeID, &detail)
	return &fee, nil
}

// GetFeeByID retrieves a single fee record.
func (s *FeeService) GetFeeByID(ctx context.Context, feeID string) (*domain.FeeRecord, error) {
	fee, err := s.feeRepo.FindFeeByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee %s: %w", feeID, err)
	}
	return fee, nil
}

// ListFees retrieves fee records matching the filter.
func (s *FeeService) ListFees(ctx context.Context, filter portsrepo.FeeFilter) ([]domain.FeeRecord, error) {
	return s.feeRepo.ListFees(ctx, filter)
}

// MarkFeePaid settles a fee record. The payment date defaults to today.
func (s *FeeService) MarkFeePaid(ctx context.Context, feeID string, req dto.MarkFeePaidRequest, actorUserID string) error {
	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	if err := s.feeRepo.MarkFeePaid(ctx, feeID, paymentDate, req.PaymentMethod); err != nil {
		return fmt.Errorf("failed to mark fee %s paid: %w", feeID, err)
	}

	table := "honorarios"
	detail := "baixa de pagamento"
	s.audit.Record(ctx, actorUserID, "PAGAR_HONORARIO", &table, &feeID, &detail)
	return nil
}

// SetYearlyAmount registers a client's default amount for one year.
func (s *FeeService) SetYearlyAmount(ctx context.Context, clientID string, req dto.SetYearlyAmountRequest, actorUserID string) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return fmt.Errorf("failed to verify client %s: %w", clientID, err)
	}

	err := s.amountRepo.UpsertYearlyAmount(ctx, domain.YearlyFeeAmount{
		ClientID: clientID,
		Year:     req.Year,
		Amount:   req.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to set yearly amount: %w", err)
	}

	table := "valores_honorarios"
	detail := fmt.Sprintf("ano=%d valor=%s", req.Year, req.Amount.StringFixed(2))
	s.audit.Record(ctx, actorUserID, "DEFINIR_VALOR_ANUAL", &table, &clientID, &detail)
	return nil
}

// ListYearlyAmounts retrieves all registered amounts of one client.
func (s *FeeService) ListYearlyAmounts(ctx context.Context, clientID string) ([]domain.YearlyFeeAmount, error) {
	return s.amountRepo.ListYearlyAmounts(ctx, clientID)
}

// CreateYearFees registers the yearly amount and creates the year's missing
// monthly PENDING records for one client in a single transaction. The year
// is truncated at the current month the same way generation runs are, so a
// mid-year registration does not bill the future.
func (s *FeeService) CreateYearFees(ctx context.Context, clientID string, req dto.CreateYearFeesRequest, actorUserID string) (*dto.GenerationResult, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("failed to verify client %s: %w", clientID, err)
	}

	err := s.amountRepo.UpsertYearlyAmount(ctx, domain.YearlyFeeAmount{
		ClientID: clientID,
		Year:     req.Year,
		Amount:   req.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register yearly amount: %w", err)
	}

	tx, err := s.feeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.feeRepo.Rollback(ctx, tx)

	result := &dto.GenerationResult{}
	lastMonth := monthsFor(req.Year, time.Now())
	for month := 1; month <= lastMonth; month++ {
		inserted, err := s.feeRepo.InsertFeeIfAbsentInTx(ctx, tx, domain.FeeRecord{
			FeeID:     uuid.NewString(),
			ClientID:  clientID,
			Year:      req.Year,
			MonthSlot: month,
			Amount:    req.Amount,
			Status:    domain.FeePending,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fee %d/%d: %w", month, req.Year, err)
		}
		if inserted {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	if err := s.feeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	table := "honorarios"
	detail := fmt.Sprintf("ano=%d criados=%d", req.Year, result.Created)
	s.audit.Record(ctx, actorUserID, "CRIAR_HONORARIOS_ANO", &table, &clientID, &detail)
	return result, nil
}
