package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/ingestion"
	"github.com/google/uuid"
)

// importUser is the actor recorded on rows created by spreadsheet imports.
const importUser = "importacao"

// ImportService reconciles the office's yearly fee spreadsheets against the
// ledger.
//
// A month column with a positive amount is authoritative and means PAID:
// the tuple gets a PENDING placeholder if absent, then is updated to PAGO
// with the sheet's amount, date and method. A month without an amount
// leaves the ledger untouched.
type ImportService struct {
	clientRepo portsrepo.ClientRepositoryWithTx
	feeRepo    portsrepo.FeeRepositoryWithTx
	audit      portssvc.AuditSvcFacade
	logger     *slog.Logger
}

// NewImportService creates the spreadsheet import service.
func NewImportService(clientRepo portsrepo.ClientRepositoryWithTx, feeRepo portsrepo.FeeRepositoryWithTx, audit portssvc.AuditSvcFacade, logger *slog.Logger) *ImportService {
	return &ImportService{clientRepo: clientRepo, feeRepo: feeRepo, audit: audit, logger: logger}
}

var _ portssvc.ImportSvcFacade = (*ImportService)(nil)

// ImportSheet runs one reconciliation pass over the raw rows of a sheet.
// The whole run commits as a single transaction; per-row failures are
// collected in the result and never abort the run. Running the same sheet
// twice leaves the ledger in the same state as the first run.
func (s *ImportService) ImportSheet(ctx context.Context, rows [][]string, sheet string, year int) (*dto.ImportRunResult, error) {
	result := &dto.ImportRunResult{Sheet: sheet, Year: year, Errors: []dto.RowError{}}

	resolver, err := newClientResolver(ctx, s.clientRepo)
	if err != nil {
		return nil, err
	}

	tx, err := s.feeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.feeRepo.Rollback(ctx, tx)

	walker := ingestion.NewBlockWalker(rows)
	for block := walker.Next(); block != nil; block = walker.Next() {
		clientID, created, err := resolver.Resolve(ctx, tx, block.Code, block.Name, importUser)
		if err != nil {
			s.logger.Warn("client creation failed, skipping stride",
				slog.Int("row", block.Row), slog.String("code", block.Code), slog.String("error", err.Error()))
			result.ClientsNotFound++
			result.Errors = append(result.Errors, dto.RowError{Row: block.Row, Reason: err.Error()})
			continue
		}
		if created {
			s.logger.Info("client auto-created from sheet",
				slog.String("code", block.Code), slog.String("name", block.Name))
			result.ClientsCreated++
		}

		for _, slot := range block.Slots() {
			cell := block.Month(slot)
			amount, ok := ingestion.ParseAmount(cell.RawAmount)
			if !ok {
				continue // no charge recorded for this month
			}

			var paymentDate *time.Time
			if d, ok := ingestion.ParseDate(cell.RawDate, year); ok {
				paymentDate = &d
			}
			var paymentMethod *string
			if m := strings.TrimSpace(cell.RawMethod); m != "" {
				paymentMethod = &m
			}

			fee := domain.FeeRecord{
				FeeID:     uuid.NewString(),
				ClientID:  clientID,
				Year:      year,
				MonthSlot: slot,
				Amount:    amount,
				Status:    domain.FeePending,
			}
			inserted, err := s.feeRepo.InsertFeeIfAbsentInTx(ctx, tx, fee)
			if err != nil {
				result.Errors = append(result.Errors, dto.RowError{
					Row:    block.Row,
					Reason: fmt.Sprintf("month %d: %v", slot, err),
				})
				continue
			}
			if inserted {
				result.Created++
			}

			updated, err := s.feeRepo.MarkTuplePaidInTx(ctx, tx, clientID, year, slot, amount, paymentDate, paymentMethod)
			if err != nil {
				result.Errors = append(result.Errors, dto.RowError{
					Row:    block.Row,
					Reason: fmt.Sprintf("month %d: %v", slot, err),
				})
				continue
			}
			if updated {
				result.Updated++
			}
		}
	}
	result.SkippedRows = walker.Skipped()

	if err := s.feeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("planilha=%s ano=%d criados=%d atualizados=%d erros=%d",
		sheet, year, result.Created, result.Updated, len(result.Errors))
	table := "honorarios"
	s.audit.Record(ctx, importUser, "IMPORTAR_PLANILHA", &table, nil, &detail)

	return result, nil
}
