package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// AuditService writes the append-only audit trail.
type AuditService struct {
	auditRepo portsrepo.AuditLogRepository
	logger    *slog.Logger
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditLogRepository, logger *slog.Logger) *AuditService {
	return &AuditService{auditRepo: auditRepo, logger: logger}
}

var _ portssvc.AuditSvcFacade = (*AuditService)(nil)

// Record appends one audit entry. Failures are logged and swallowed so the
// audited operation never fails because of the trail. The write outlives the
// request context to survive client disconnects mid-commit.
func (s *AuditService) Record(ctx context.Context, actor, action string, table, recordID, detail *string) {
	entry := domain.AuditLogEntry{
		EntryID:  uuid.NewString(),
		Actor:    actor,
		Action:   action,
		Table:    table,
		RecordID: recordID,
		Detail:   detail,
		LoggedAt: time.Now(),
	}
	if err := s.auditRepo.AppendAuditLog(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Warn("audit log write failed",
			slog.String("actor", actor),
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}

// ListEntries retrieves audit entries matching the filter, newest first.
func (s *AuditService) ListEntries(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.ListAuditLogs(ctx, filter)
}
