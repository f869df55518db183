package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/contafacil/honorarios_app/internal/dto"
)

// CertificateSvcFacade defines the operations for digital-certificate sales.
type CertificateSvcFacade interface {
	CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest, actorUserID string) (*domain.Certificate, error)
	GetCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error)
	ListCertificates(ctx context.Context, filter portsrepo.CertificateFilter) ([]domain.Certificate, error)
	ListExpiringCertificates(ctx context.Context, withinDays int) ([]domain.Certificate, error)
	UpdateCertificate(ctx context.Context, certificateID string, req dto.UpdateCertificateRequest, actorUserID string) (*domain.Certificate, error)
	DeleteCertificate(ctx context.Context, certificateID string, actorUserID string) error
}
