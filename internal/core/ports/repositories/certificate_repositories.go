package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// CertificateFilter narrows certificate listings; zero values mean "no filter".
type CertificateFilter struct {
	Status   domain.CertificateStatus
	ClientID string
}

// CertificateReader defines read operations for digital certificates.
type CertificateReader interface {
	// FindCertificateByID retrieves a single certificate.
	FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error)

	// ListCertificates retrieves certificates matching the filter, ordered
	// by expiry date descending.
	ListCertificates(ctx context.Context, filter CertificateFilter) ([]domain.Certificate, error)

	// ListExpiringCertificates retrieves active certificates expiring within
	// the next N days (already expired ones excluded).
	ListExpiringCertificates(ctx context.Context, withinDays int) ([]domain.Certificate, error)
}

// CertificateWriter defines write operations for digital certificates.
type CertificateWriter interface {
	// SaveCertificate persists a new certificate.
	SaveCertificate(ctx context.Context, certificate domain.Certificate) error

	// UpdateCertificate updates an existing certificate.
	UpdateCertificate(ctx context.Context, certificate domain.Certificate) error

	// DeleteCertificate removes a certificate.
	DeleteCertificate(ctx context.Context, certificateID string) error
}

// CertificateRepositoryFacade combines the certificate interfaces.
type CertificateRepositoryFacade interface {
	CertificateReader
	CertificateWriter
}
