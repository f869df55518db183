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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

const clientColumns = `id, codigo_interno, nome, cnpj, cpf, endereco, telefone, email, ativo, valor_honorario,
		criado_em, criado_por, atualizado_em, atualizado_por`

const insertClientSQL = `
	INSERT INTO clientes (id, codigo_interno, nome, cnpj, cpf, endereco, telefone, email, ativo, valor_honorario,
		criado_em, criado_por, atualizado_em, atualizado_por)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.InternalCode,
		&c.Name,
		&c.CNPJ,
		&c.CPF,
		&c.Address,
		&c.Phone,
		&c.Email,
		&c.Active,
		&c.DefaultFeeAmount,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE id = $1;`, clientColumns)
	client, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, active bool) ([]domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE ativo = $1 ORDER BY nome;`, clientColumns)
	rows, err := r.Pool.Query(ctx, query, active)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

func (r *PgxClientRepository) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes ORDER BY nome;`, clientColumns)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

func collectClients(rows pgx.Rows) ([]domain.Client, error) {
	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	_, err := r.Pool.Exec(ctx, insertClientSQL, clientArgs(client)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	_, err := tx.Exec(ctx, insertClientSQL, clientArgs(client)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client in tx: %w", err)
	}
	return nil
}

func clientArgs(c domain.Client) []any {
	return []any{
		c.ClientID,
		c.InternalCode,
		c.Name,
		c.CNPJ,
		c.CPF,
		c.Address,
		c.Phone,
		c.Email,
		c.Active,
		c.DefaultFeeAmount,
		c.CreatedAt,
		c.CreatedBy,
		c.LastUpdatedAt,
		c.LastUpdatedBy,
	}
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clientes SET
			codigo_interno = $2,
			nome = $3,
			cnpj = $4,
			cpf = $5,
			endereco = $6,
			telefone = $7,
			email = $8,
			ativo = $9,
			valor_honorario = $10,
			atualizado_em = $11,
			atualizado_por = $12
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.InternalCode,
		client.Name,
		client.CNPJ,
		client.CPF,
		client.Address,
		client.Phone,
		client.Email,
		client.Active,
		client.DefaultFeeAmount,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
