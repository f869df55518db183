package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/google/uuid"
)

// CertificateService manages digital-certificate sales.
type CertificateService struct {
	clientRepo portsrepo.ClientRepositoryFacade
	certRepo   portsrepo.CertificateRepositoryFacade
	audit      portssvc.AuditSvcFacade
	logger     *slog.Logger
}

// NewCertificateService creates the certificate service.
func NewCertificateService(clientRepo portsrepo.ClientRepositoryFacade, certRepo portsrepo.CertificateRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *CertificateService {
	return &CertificateService{clientRepo: clientRepo, certRepo: certRepo, audit: audit, logger: logger}
}

var _ portssvc.CertificateSvcFacade = (*CertificateService)(nil)

// CreateCertificate registers a certificate sale. The buyer is either a
// registered client (ClientID) or a walk-in (StandaloneName); exactly one of
// the two must be present.
func (s *CertificateService) CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest, actorUserID string) (*domain.Certificate, error) {
	if (req.ClientID == nil) == (req.StandaloneName == nil) {
		return nil, fmt.Errorf("%w: exactly one of clientID and standaloneName must be set", apperrors.ErrValidation)
	}
	if !req.ExpiresAt.After(req.IssuedAt) {
		return nil, fmt.Errorf("%w: expiry must follow issuance", apperrors.ErrValidation)
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("failed to verify client %s: %w", *req.ClientID, err)
		}
	}
	if req.LinkedToFee && (req.FeeMonth == nil || req.FeeYear == nil || req.ClientID == nil) {
		return nil, fmt.Errorf("%w: fee-linked certificates need a client, month and year", apperrors.ErrValidation)
	}

	cert := domain.Certificate{
		CertificateID:  uuid.NewString(),
		ClientID:       req.ClientID,
		StandaloneName: req.StandaloneName,
		TaxID:          req.TaxID,
		Type:           req.Type,
		Category:       req.Category,
		Media:          req.Media,
		ValidityYears:  req.ValidityYears,
		IssuedAt:       req.IssuedAt,
		ExpiresAt:      req.ExpiresAt,
		Amount:         req.Amount,
		Status:         domain.CertificateActive,
		PaymentStatus:  domain.FeePending,
		Note:           req.Note,
		LinkedToFee:    req.LinkedToFee,
		FeeMonth:       req.FeeMonth,
		FeeYear:        req.FeeYear,
		RegisteredAt:   time.Now(),
	}
	if err := s.certRepo.SaveCertificate(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to register certificate: %w", err)
	}

	table := "certificados"
	detail := fmt.Sprintf("%s %s", cert.Type, cert.Category)
	s.audit.Record(ctx, actorUserID, "CRIAR_CERTIFICADO", &table, &cert.CertificateID, &detail)
	return &cert, nil
}

// GetCertificateByID retrieves a single certificate.
func (s *CertificateService) GetCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	cert, err := s.certRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate %s: %w", certificateID, err)
	}
	return cert, nil
}

// ListCertificates retrieves certificates matching the filter.
func (s *CertificateService) ListCertificates(ctx context.Context, filter portsrepo.CertificateFilter) ([]domain.Certificate, error) {
	return s.certRepo.ListCertificates(ctx, filter)
}

// ListExpiringCertificates retrieves active certificates expiring within the
// next N days.
func (s *CertificateService) ListExpiringCertificates(ctx context.Context, withinDays int) ([]domain.Certificate, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	return s.certRepo.ListExpiringCertificates(ctx, withinDays)
}

// UpdateCertificate applies the non-nil fields of the request.
func (s *CertificateService) UpdateCertificate(ctx context.Context, certificateID string, req dto.UpdateCertificateRequest, actorUserID string) (*domain.Certificate, error) {
	cert, err := s.certRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate %s for update: %w", certificateID, err)
	}

	if req.Status != nil {
		cert.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		cert.PaymentStatus = *req.PaymentStatus
	}
	if req.Media != nil {
		cert.Media = req.Media
	}
	if req.Note != nil {
		cert.Note = req.Note
	}
	if req.Amount != nil {
		cert.Amount = *req.Amount
	}
	if req.ExpiresAt != nil {
		cert.ExpiresAt = *req.ExpiresAt
	}

	if err := s.certRepo.UpdateCertificate(ctx, *cert); err != nil {
		return nil, fmt.Errorf("failed to update certificate %s: %w", certificateID, err)
	}

	table := "certificados"
	s.audit.Record(ctx, actorUserID, "ATUALIZAR_CERTIFICADO", &table, &cert.CertificateID, nil)
	return cert, nil
}

// DeleteCertificate removes a certificate.
func (s *CertificateService) DeleteCertificate(ctx context.Context, certificateID string, actorUserID string) error {
	if _, err := s.certRepo.FindCertificateByID(ctx, certificateID); err != nil {
		return fmt.Errorf("failed to get certificate %s for deletion: %w", certificateID, err)
	}
	if err := s.certRepo.DeleteCertificate(ctx, certificateID); err != nil {
		return fmt.Errorf("failed to delete certificate %s: %w", certificateID, err)
	}

	table := "certificados"
	s.audit.Record(ctx, actorUserID, "EXCLUIR_CERTIFICADO", &table, &certificateID, nil)
	return nil
}
