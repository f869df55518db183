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

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(db *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.ReceiptWithClient, error) {
	query := `
		SELECT r.id, r.numero, r.cliente_id, r.valor, r.descricao, r.mes_referencia, r.ano_referencia, r.emitido_em,
			c.nome, c.cnpj, c.cpf, c.endereco
		FROM recibos r
		JOIN clientes c ON c.id = r.cliente_id
		WHERE r.id = $1;
	`
	var rc domain.ReceiptWithClient
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&rc.ReceiptID,
		&rc.Number,
		&rc.ClientID,
		&rc.Amount,
		&rc.Description,
		&rc.ReferenceMonth,
		&rc.ReferenceYear,
		&rc.IssuedAt,
		&rc.ClientName,
		&rc.ClientCNPJ,
		&rc.ClientCPF,
		&rc.ClientAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}
	return &rc, nil
}

func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter portsrepo.ReceiptFilter) ([]domain.Receipt, error) {
	query := `SELECT id, numero, cliente_id, valor, descricao, mes_referencia, ano_referencia, emitido_em FROM recibos WHERE 1=1`
	args := []any{}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(" AND cliente_id = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND ano_referencia = $%d", len(args))
	}
	query += " ORDER BY numero DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var rec domain.Receipt
		err := rows.Scan(
			&rec.ReceiptID,
			&rec.Number,
			&rec.ClientID,
			&rec.Amount,
			&rec.Description,
			&rec.ReferenceMonth,
			&rec.ReferenceYear,
			&rec.IssuedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading receipt rows: %w", err)
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) ReceiptExists(ctx context.Context, clientID string, month, year int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM recibos WHERE cliente_id = $1 AND mes_referencia = $2 AND ano_referencia = $3);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, clientID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check receipt existence: %w", err)
	}
	return exists, nil
}

// SaveReceipt assigns MAX(numero)+1 and inserts in one transaction so
// concurrent issuers cannot take the same number.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var number int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(numero), 0) + 1 FROM recibos;`).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to assign receipt number: %w", err)
	}

	query := `
		INSERT INTO recibos (id, numero, cliente_id, valor, descricao, mes_referencia, ano_referencia, emitido_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		receipt.ReceiptID,
		number,
		receipt.ClientID,
		receipt.Amount,
		receipt.Description,
		receipt.ReferenceMonth,
		receipt.ReferenceYear,
		receipt.IssuedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: receipt number taken", apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to save receipt: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return number, nil
}
