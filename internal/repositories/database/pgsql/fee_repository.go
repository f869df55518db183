package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxFeeRepository struct {
	BaseRepository
}

func newPgxFeeRepository(db *pgxpool.Pool) portsrepo.FeeRepositoryWithTx {
	return &PgxFeeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.FeeRepositoryWithTx = (*PgxFeeRepository)(nil)

const feeColumns = `id, cliente_id, ano, mes, valor, status, data_vencimento, data_pagamento, forma_pagamento, observacao`

func scanFee(row pgx.Row) (*domain.FeeRecord, error) {
	var f domain.FeeRecord
	err := row.Scan(
		&f.FeeID,
		&f.ClientID,
		&f.Year,
		&f.MonthSlot,
		&f.Amount,
		&f.Status,
		&f.DueDate,
		&f.PaymentDate,
		&f.PaymentMethod,
		&f.Note,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgxFeeRepository) FindFeeByID(ctx context.Context, feeID string) (*domain.FeeRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM honorarios WHERE id = $1;`, feeColumns)
	fee, err := scanFee(r.Pool.QueryRow(ctx, query, feeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fee by ID %s: %w", feeID, err)
	}
	return fee, nil
}

func (r *PgxFeeRepository) ListFees(ctx context.Context, filter portsrepo.FeeFilter) ([]domain.FeeRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM honorarios WHERE 1=1`, feeColumns)
	args := []any{}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND ano = $%d", len(args))
	}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(" AND cliente_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY ano DESC, mes DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.FeeRecord
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee row: %w", err)
		}
		fees = append(fees, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading fee rows: %w", err)
	}
	return fees, nil
}

func (r *PgxFeeRepository) SaveFee(ctx context.Context, fee domain.FeeRecord) error {
	query := `
		INSERT INTO honorarios (id, cliente_id, ano, mes, valor, status, data_vencimento, data_pagamento, forma_pagamento, observacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		fee.FeeID,
		fee.ClientID,
		fee.Year,
		fee.MonthSlot,
		fee.Amount,
		fee.Status,
		fee.DueDate,
		fee.PaymentDate,
		fee.PaymentMethod,
		fee.Note,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: fee for %d/%d already exists", apperrors.ErrDuplicate, fee.MonthSlot, fee.Year)
		}
		return fmt.Errorf("failed to save fee: %w", err)
	}
	return nil
}

func (r *PgxFeeRepository) MarkFeePaid(ctx context.Context, feeID string, paymentDate time.Time, paymentMethod *string) error {
	query := `
		UPDATE honorarios
		SET status = $2, data_pagamento = $3, forma_pagamento = COALESCE($4, forma_pagamento)
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, feeID, domain.FeePaid, paymentDate, paymentMethod)
	if err != nil {
		return fmt.Errorf("failed to mark fee %s paid: %w", feeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertFeeIfAbsentInTx relies on the unique (cliente_id, ano, mes) index:
// ON CONFLICT DO NOTHING makes reruns of the same sheet or generation run
// no-ops without reading first.
func (r *PgxFeeRepository) InsertFeeIfAbsentInTx(ctx context.Context, tx pgx.Tx, fee domain.FeeRecord) (bool, error) {
	query := `
		INSERT INTO honorarios (id, cliente_id, ano, mes, valor, status, data_vencimento, data_pagamento, forma_pagamento, observacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (cliente_id, ano, mes) DO NOTHING;
	`
	tag, err := tx.Exec(ctx, query,
		fee.FeeID,
		fee.ClientID,
		fee.Year,
		fee.MonthSlot,
		fee.Amount,
		fee.Status,
		fee.DueDate,
		fee.PaymentDate,
		fee.PaymentMethod,
		fee.Note,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert fee if absent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxFeeRepository) MarkTuplePaidInTx(ctx context.Context, tx pgx.Tx, clientID string, year, monthSlot int, amount decimal.Decimal, paymentDate *time.Time, paymentMethod *string) (bool, error) {
	query := `
		UPDATE honorarios
		SET valor = $4, status = $5, data_pagamento = $6, forma_pagamento = $7
		WHERE cliente_id = $1 AND ano = $2 AND mes = $3;
	`
	tag, err := tx.Exec(ctx, query, clientID, year, monthSlot, amount, domain.FeePaid, paymentDate, paymentMethod)
	if err != nil {
		return false, fmt.Errorf("failed to mark tuple paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
