package pgsql

import (
	"context"
	"fmt"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetYearSummary(ctx context.Context, year int) (*domain.YearSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PAGO'),
			COUNT(*) FILTER (WHERE status = 'PENDENTE'),
			COUNT(*) FILTER (WHERE status = 'ATRASADO'),
			COALESCE(SUM(valor), 0),
			COALESCE(SUM(valor) FILTER (WHERE status = 'PAGO'), 0),
			COALESCE(SUM(valor) FILTER (WHERE status <> 'PAGO'), 0)
		FROM honorarios
		WHERE ano = $1;
	`
	summary := domain.YearSummary{Year: year}
	err := r.Pool.QueryRow(ctx, query, year).Scan(
		&summary.Total,
		&summary.Paid,
		&summary.Pending,
		&summary.Late,
		&summary.TotalAmount,
		&summary.PaidAmount,
		&summary.PendingAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate year %d: %w", year, err)
	}
	return &summary, nil
}

func (r *PgxReportingRepository) GetClientYearSummaries(ctx context.Context, clientID string) ([]domain.ClientYearSummary, error) {
	query := `
		SELECT
			ano,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PAGO'),
			COUNT(*) FILTER (WHERE status <> 'PAGO'),
			COALESCE(SUM(valor), 0),
			COALESCE(SUM(valor) FILTER (WHERE status = 'PAGO'), 0),
			COALESCE(SUM(valor) FILTER (WHERE status <> 'PAGO'), 0)
		FROM honorarios
		WHERE cliente_id = $1
		GROUP BY ano
		ORDER BY ano DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate client years: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ClientYearSummary
	for rows.Next() {
		var s domain.ClientYearSummary
		err := rows.Scan(
			&s.Year,
			&s.Total,
			&s.Paid,
			&s.Pending,
			&s.TotalAmount,
			&s.PaidAmount,
			&s.PendingAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client year row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading client year rows: %w", err)
	}
	return summaries, nil
}

func (r *PgxReportingRepository) GetPaymentMethodTotals(ctx context.Context, year int) ([]domain.PaymentMethodTotal, error) {
	query := `
		SELECT COALESCE(NULLIF(TRIM(forma_pagamento), ''), 'Não informado'), COUNT(*), COALESCE(SUM(valor), 0)
		FROM honorarios
		WHERE ano = $1 AND status = 'PAGO'
		GROUP BY 1
		ORDER BY 3 DESC;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment methods: %w", err)
	}
	defer rows.Close()

	var totals []domain.PaymentMethodTotal
	for rows.Next() {
		var t domain.PaymentMethodTotal
		if err := rows.Scan(&t.Method, &t.Count, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading payment method rows: %w", err)
	}
	return totals, nil
}

func (r *PgxReportingRepository) ListDueFees(ctx context.Context, year, month int) ([]domain.DueFee, error) {
	query := `
		SELECT h.id, h.cliente_id, h.ano, h.mes, h.valor, h.status, h.data_vencimento, h.data_pagamento,
			h.forma_pagamento, h.observacao, c.nome, c.email
		FROM honorarios h
		JOIN clientes c ON c.id = h.cliente_id
		WHERE h.ano = $1 AND h.mes IN ($2, $3) AND h.status <> 'PAGO'
		ORDER BY h.mes, c.nome;
	`
	rows, err := r.Pool.Query(ctx, query, year, month, month+1)
	if err != nil {
		return nil, fmt.Errorf("failed to query due fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.DueFee
	for rows.Next() {
		var f domain.DueFee
		err := rows.Scan(
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
			&f.ClientName,
			&f.ClientEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due fee row: %w", err)
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading due fee rows: %w", err)
	}
	return fees, nil
}
