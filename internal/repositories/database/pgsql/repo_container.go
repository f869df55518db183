package pgsql

import (
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		FeeRepo:         newPgxFeeRepository(dbPool),
		FeeAmountRepo:   newPgxFeeAmountRepository(dbPool),
		ReceiptRepo:     newPgxReceiptRepository(dbPool),
		CertificateRepo: newPgxCertificateRepository(dbPool),
		AuditRepo:       newPgxAuditLogRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
