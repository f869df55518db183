package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo      ClientRepositoryWithTx
	FeeRepo         FeeRepositoryWithTx
	FeeAmountRepo   FeeAmountRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	CertificateRepo CertificateRepositoryFacade
	AuditRepo       AuditLogRepository
	UserRepo        UserRepositoryFacade
	ReportingRepo   ReportingRepository
}
