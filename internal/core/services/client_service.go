package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/google/uuid"
)

// ClientService manages the client registry.
type ClientService struct {
	clientRepo    portsrepo.ClientRepositoryWithTx
	feeAmountRepo portsrepo.FeeAmountRepositoryFacade
	audit         portssvc.AuditSvcFacade
	logger        *slog.Logger
}

// NewClientService creates the client registry service.
func NewClientService(clientRepo portsrepo.ClientRepositoryWithTx, feeAmountRepo portsrepo.FeeAmountRepositoryFacade, audit portssvc.AuditSvcFacade, logger *slog.Logger) *ClientService {
	return &ClientService{clientRepo: clientRepo, feeAmountRepo: feeAmountRepo, audit: audit, logger: logger}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

// CreateClient registers a new client. When the request carries a yearly
// amount seed, the amount is registered in the same call so the next
// generation run picks the client up.
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	client := domain.Client{
		ClientID:         uuid.NewString(),
		InternalCode:     strings.TrimSpace(req.InternalCode),
		Name:             strings.TrimSpace(req.Name),
		CNPJ:             req.CNPJ,
		CPF:              req.CPF,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		Active:           active,
		DefaultFeeAmount: req.DefaultFee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if seed := req.YearlyAmount; seed != nil {
		err := s.feeAmountRepo.UpsertYearlyAmount(ctx, domain.YearlyFeeAmount{
			ClientID: client.ClientID,
			Year:     seed.Year,
			Amount:   seed.Amount,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register yearly amount for new client: %w", err)
		}
	}

	table := "clientes"
	s.audit.Record(ctx, creatorUserID, "CRIAR_CLIENTE", &table, &client.ClientID, &client.Name)
	return &client, nil
}

// GetClientByID retrieves a single client.
func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves clients filtered by the active flag.
func (s *ClientService) ListClients(ctx context.Context, active bool) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, active)
}

// UpdateClient applies the non-nil fields of the request to the client.
func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s for update: %w", clientID, err)
	}

	if req.InternalCode != nil {
		client.InternalCode = strings.TrimSpace(*req.InternalCode)
	}
	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.CNPJ != nil {
		client.CNPJ = req.CNPJ
	}
	if req.CPF != nil {
		client.CPF = req.CPF
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Active != nil {
		client.Active = *req.Active
	}
	if req.DefaultFee != nil {
		client.DefaultFeeAmount = req.DefaultFee
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}

	table := "clientes"
	s.audit.Record(ctx, updaterUserID, "ATUALIZAR_CLIENTE", &table, &client.ClientID, &client.Name)
	return client, nil
}
