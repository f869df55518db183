package services

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/dto"
)

// ClientSvcFacade defines the operations for managing clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, active bool) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)
}
