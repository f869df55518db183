package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const generationUser = "geracao"

// GenerationService materializes PENDING fee records from the registered
// yearly default amounts. Generation is additive-only: an existing tuple is
// never touched, so a PAID record can never be downgraded by a rerun.
type GenerationService struct {
	clientRepo    portsrepo.ClientRepositoryFacade
	feeRepo       portsrepo.FeeRepositoryWithTx
	feeAmountRepo portsrepo.FeeAmountRepositoryFacade
	audit         portssvc.AuditSvcFacade
	logger        *slog.Logger
}

// NewGenerationService creates the pending-fee generation service.
func NewGenerationService(clientRepo portsrepo.ClientRepositoryFacade, feeRepo portsrepo.FeeRepositoryWithTx, feeAmountRepo portsrepo.FeeAmountRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		clientRepo:    clientRepo,
		feeRepo:       feeRepo,
		feeAmountRepo: feeAmountRepo,
		audit:         audit,
		logger:        logger,
	}
}

var _ portssvc.GenerationSvcFacade = (*GenerationService)(nil)

// monthsFor truncates a generation year at "today": past years get all 12
// ordinary months, the current year stops at the current month, future years
// get nothing. The 13th-salary slot is never generated, only imported or
// registered manually.
func monthsFor(year int, today time.Time) int {
	switch {
	case year < today.Year():
		return 12
	case year == today.Year():
		return int(today.Month())
	default:
		return 0
	}
}

// GenerateAll walks every registered (client, year, amount) triple and
// inserts the missing PENDING records in one transaction.
func (s *GenerationService) GenerateAll(ctx context.Context, today time.Time) (*dto.GenerationResult, error) {
	entries, err := s.feeAmountRepo.ListAllYearlyAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list yearly amounts: %w", err)
	}

	tx, err := s.feeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.feeRepo.Rollback(ctx, tx)

	result := &dto.GenerationResult{}
	for _, entry := range entries {
		lastMonth := monthsFor(entry.Year, today)
		for month := 1; month <= lastMonth; month++ {
			inserted, err := s.feeRepo.InsertFeeIfAbsentInTx(ctx, tx, domain.FeeRecord{
				FeeID:     uuid.NewString(),
				ClientID:  entry.ClientID,
				Year:      entry.Year,
				MonthSlot: month,
				Amount:    entry.Amount,
				Status:    domain.FeePending,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to generate fee for client %s %d/%d: %w", entry.ClientID, month, entry.Year, err)
			}
			if inserted {
				result.Created++
				if result.Created%100 == 0 {
					s.logger.Info("generation progress", slog.Int("created", result.Created))
				}
			} else {
				result.Skipped++
			}
		}
	}

	if err := s.feeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("criados=%d pulados=%d", result.Created, result.Skipped)
	table := "honorarios"
	s.audit.Record(ctx, generationUser, "GERAR_HONORARIOS", &table, nil, &detail)
	return result, nil
}

// GenerateCurrentMonth creates this month's PENDING record for every active
// client with a known amount. The year's registered amount wins; clients
// registered before per-year amounts existed fall back to their legacy
// default amount. Clients with neither are skipped silently.
func (s *GenerationService) GenerateCurrentMonth(ctx context.Context, today time.Time) (*dto.GenerationResult, error) {
	clients, err := s.clientRepo.ListClients(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list active clients: %w", err)
	}

	tx, err := s.feeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.feeRepo.Rollback(ctx, tx)

	result := &dto.GenerationResult{}
	for _, client := range clients {
		amount, ok, err := s.amountForYear(ctx, &client, today.Year())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		inserted, err := s.feeRepo.InsertFeeIfAbsentInTx(ctx, tx, domain.FeeRecord{
			FeeID:     uuid.NewString(),
			ClientID:  client.ClientID,
			Year:      today.Year(),
			MonthSlot: int(today.Month()),
			Amount:    amount,
			Status:    domain.FeePending,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate current month fee for client %s: %w", client.ClientID, err)
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
	return result, nil
}

func (s *GenerationService) amountForYear(ctx context.Context, client *domain.Client, year int) (decimal.Decimal, bool, error) {
	yearly, err := s.feeAmountRepo.FindYearlyAmount(ctx, client.ClientID, year)
	switch {
	case err == nil:
		return yearly.Amount, yearly.Amount.IsPositive(), nil
	case errors.Is(err, apperrors.ErrNotFound):
		if client.DefaultFeeAmount != nil && client.DefaultFeeAmount.IsPositive() {
			return *client.DefaultFeeAmount, true, nil
		}
		return decimal.Zero, false, nil
	default:
		return decimal.Zero, false, fmt.Errorf("failed to load yearly amount for client %s: %w", client.ClientID, err)
	}
}
