package pgsql

import (
	"context"
	"fmt"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO logs_auditoria (id, ator, acao, tabela, registro_id, detalhe, registrado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.Actor,
		entry.Action,
		entry.Table,
		entry.RecordID,
		entry.Detail,
		entry.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	query := `SELECT id, ator, acao, tabela, registro_id, detalhe, registrado_em FROM logs_auditoria WHERE 1=1`
	args := []any{}
	if filter.Actor != "" {
		args = append(args, filter.Actor)
		query += fmt.Sprintf(" AND ator = $%d", len(args))
	}
	if filter.Table != "" {
		args = append(args, filter.Table)
		query += fmt.Sprintf(" AND tabela = $%d", len(args))
	}
	query += " ORDER BY registrado_em DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var e domain.AuditLogEntry
		err := rows.Scan(&e.EntryID, &e.Actor, &e.Action, &e.Table, &e.RecordID, &e.Detail, &e.LoggedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading audit log rows: %w", err)
	}
	return entries, nil
}
