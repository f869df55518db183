package repositories

import (
	"context"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a single client.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients filtered by the active flag.
	ListClients(ctx context.Context, active bool) ([]domain.Client, error)

	// ListAllClients retrieves every client regardless of the active flag.
	// The import resolver scans this once per run to build its indexes.
	ListAllClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates the mutable fields of an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// SaveClientInTx persists a new client inside a caller-managed
	// transaction (used by the import resolver's auto-creation).
	SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// ClientRepositoryWithTx extends the facade with transaction capabilities.
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
