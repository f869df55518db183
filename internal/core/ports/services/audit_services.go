package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
)

// AuditSvcFacade records and lists the audit trail. Record is fire-and-forget:
// implementations log failures but never return them to the audited operation.
type AuditSvcFacade interface {
	Record(ctx context.Context, actor, action string, table, recordID, detail *string)
	ListEntries(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error)
}
