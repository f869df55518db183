package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFeeAmountRepository struct {
	BaseRepository
}

func newPgxFeeAmountRepository(db *pgxpool.Pool) portsrepo.FeeAmountRepositoryFacade {
	return &PgxFeeAmountRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.FeeAmountRepositoryFacade = (*PgxFeeAmountRepository)(nil)

func (r *PgxFeeAmountRepository) FindYearlyAmount(ctx context.Context, clientID string, year int) (*domain.YearlyFeeAmount, error) {
	query := `SELECT cliente_id, ano, valor FROM valores_honorarios WHERE cliente_id = $1 AND ano = $2;`
	var a domain.YearlyFeeAmount
	err := r.Pool.QueryRow(ctx, query, clientID, year).Scan(&a.ClientID, &a.Year, &a.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find yearly amount: %w", err)
	}
	return &a, nil
}

func (r *PgxFeeAmountRepository) ListYearlyAmounts(ctx context.Context, clientID string) ([]domain.YearlyFeeAmount, error) {
	query := `SELECT cliente_id, ano, valor FROM valores_honorarios WHERE cliente_id = $1 ORDER BY ano;`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly amounts: %w", err)
	}
	defer rows.Close()

	var amounts []domain.YearlyFeeAmount
	for rows.Next() {
		var a domain.YearlyFeeAmount
		if err := rows.Scan(&a.ClientID, &a.Year, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan yearly amount row: %w", err)
		}
		amounts = append(amounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading yearly amount rows: %w", err)
	}
	return amounts, nil
}

func (r *PgxFeeAmountRepository) ListAllYearlyAmounts(ctx context.Context) ([]portsrepo.YearlyAmountEntry, error) {
	query := `
		SELECT v.cliente_id, v.ano, v.valor, c.nome, c.ativo
		FROM valores_honorarios v
		JOIN clientes c ON c.id = v.cliente_id
		ORDER BY c.nome, v.ano;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all yearly amounts: %w", err)
	}
	defer rows.Close()

	var entries []portsrepo.YearlyAmountEntry
	for rows.Next() {
		var e portsrepo.YearlyAmountEntry
		if err := rows.Scan(&e.ClientID, &e.Year, &e.Amount, &e.ClientName, &e.ClientActive); err != nil {
			return nil, fmt.Errorf("failed to scan yearly amount entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading yearly amount entries: %w", err)
	}
	return entries, nil
}

func (r *PgxFeeAmountRepository) UpsertYearlyAmount(ctx context.Context, amount domain.YearlyFeeAmount) error {
	query := `
		INSERT INTO valores_honorarios (cliente_id, ano, valor)
		VALUES ($1, $2, $3)
		ON CONFLICT (cliente_id, ano) DO UPDATE SET valor = EXCLUDED.valor;
	`
	_, err := r.Pool.Exec(ctx, query, amount.ClientID, amount.Year, amount.Amount)
	if err != nil {
		return fmt.Errorf("failed to upsert yearly amount: %w", err)
	}
	return nil
}
