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

type PgxCertificateRepository struct {
	BaseRepository
}

func newPgxCertificateRepository(db *pgxpool.Pool) portsrepo.CertificateRepositoryFacade {
	return &PgxCertificateRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CertificateRepositoryFacade = (*PgxCertificateRepository)(nil)

const certificateColumns = `id, cliente_id, nome_avulso, documento, tipo, categoria, midia, anos_validade,
		emitido_em, vence_em, valor, status, status_pagamento, observacao, vinculado_honorario, mes_honorario, ano_honorario, registrado_em`

func scanCertificate(row pgx.Row) (*domain.Certificate, error) {
	var c domain.Certificate
	err := row.Scan(
		&c.CertificateID,
		&c.ClientID,
		&c.StandaloneName,
		&c.TaxID,
		&c.Type,
		&c.Category,
		&c.Media,
		&c.ValidityYears,
		&c.IssuedAt,
		&c.ExpiresAt,
		&c.Amount,
		&c.Status,
		&c.PaymentStatus,
		&c.Note,
		&c.LinkedToFee,
		&c.FeeMonth,
		&c.FeeYear,
		&c.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCertificateRepository) FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificados WHERE id = $1;`, certificateColumns)
	cert, err := scanCertificate(r.Pool.QueryRow(ctx, query, certificateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find certificate by ID %s: %w", certificateID, err)
	}
	return cert, nil
}

func (r *PgxCertificateRepository) ListCertificates(ctx context.Context, filter portsrepo.CertificateFilter) ([]domain.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificados WHERE 1=1`, certificateColumns)
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(" AND cliente_id = $%d", len(args))
	}
	query += " ORDER BY vence_em DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()
	return collectCertificates(rows)
}

func (r *PgxCertificateRepository) ListExpiringCertificates(ctx context.Context, withinDays int) ([]domain.Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM certificados
		WHERE status = $1
		  AND vence_em >= NOW()
		  AND vence_em <= NOW() + make_interval(days => $2)
		ORDER BY vence_em;
	`, certificateColumns)
	rows, err := r.Pool.Query(ctx, query, domain.CertificateActive, withinDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring certificates: %w", err)
	}
	defer rows.Close()
	return collectCertificates(rows)
}

func collectCertificates(rows pgx.Rows) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate row: %w", err)
		}
		certs = append(certs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading certificate rows: %w", err)
	}
	return certs, nil
}

func (r *PgxCertificateRepository) SaveCertificate(ctx context.Context, certificate domain.Certificate) error {
	query := `
		INSERT INTO certificados (id, cliente_id, nome_avulso, documento, tipo, categoria, midia, anos_validade,
			emitido_em, vence_em, valor, status, status_pagamento, observacao, vinculado_honorario, mes_honorario, ano_honorario, registrado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		certificate.CertificateID,
		certificate.ClientID,
		certificate.StandaloneName,
		certificate.TaxID,
		certificate.Type,
		certificate.Category,
		certificate.Media,
		certificate.ValidityYears,
		certificate.IssuedAt,
		certificate.ExpiresAt,
		certificate.Amount,
		certificate.Status,
		certificate.PaymentStatus,
		certificate.Note,
		certificate.LinkedToFee,
		certificate.FeeMonth,
		certificate.FeeYear,
		certificate.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

func (r *PgxCertificateRepository) UpdateCertificate(ctx context.Context, certificate domain.Certificate) error {
	query := `
		UPDATE certificados SET
			midia = $2,
			vence_em = $3,
			valor = $4,
			status = $5,
			status_pagamento = $6,
			observacao = $7
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		certificate.CertificateID,
		certificate.Media,
		certificate.ExpiresAt,
		certificate.Amount,
		certificate.Status,
		certificate.PaymentStatus,
		certificate.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to update certificate %s: %w", certificate.CertificateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCertificateRepository) DeleteCertificate(ctx context.Context, certificateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM certificados WHERE id = $1;`, certificateID)
	if err != nil {
		return fmt.Errorf("failed to delete certificate %s: %w", certificateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
