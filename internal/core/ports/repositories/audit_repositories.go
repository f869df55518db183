package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// AuditLogFilter narrows audit log listings; zero values mean "no filter".
type AuditLogFilter struct {
	Actor string
	Table string
	Limit int
}

// AuditLogRepository is the append-mostly store of the audit trail.
type AuditLogRepository interface {
	// AppendAuditLog persists one entry. Callers treat failures as
	// non-fatal: the audited operation must not roll back because the
	// trail write failed.
	AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error

	// ListAuditLogs retrieves entries matching the filter, newest first.
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]domain.AuditLogEntry, error)
}
