package services

import (
	"log/slog"

	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit comes first since nearly every other service records through it.
	container.Audit = NewAuditService(repos.AuditRepo, logger)

	container.Client = NewClientService(repos.ClientRepo, repos.FeeAmountRepo, container.Audit, logger)
	container.Fee = NewFeeService(repos.ClientRepo, repos.FeeRepo, repos.FeeAmountRepo, container.Audit, logger)
	container.Generation = NewGenerationService(repos.ClientRepo, repos.FeeRepo, repos.FeeAmountRepo, container.Audit, logger)
	container.Import = NewImportService(repos.ClientRepo, repos.FeeRepo, container.Audit, logger)
	container.Reporting = NewReportingService(repos.ClientRepo, repos.FeeRepo, repos.ReceiptRepo, repos.ReportingRepo)
	container.Receipt = NewReceiptService(repos.ClientRepo, repos.ReceiptRepo, container.Audit, logger)
	container.Certificate = NewCertificateService(repos.ClientRepo, repos.CertificateRepo, container.Audit, logger)
	container.User = NewUserService(repos.UserRepo, container.Audit, logger)
	container.Auth = NewAuthService(repos.UserRepo, cfg, logger)

	return container
}
