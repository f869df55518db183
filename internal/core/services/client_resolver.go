package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// clientResolver maps the (internal code, display name) pair of a spreadsheet
// stride to a canonical client id for the duration of one import run.
//
// Resolution precedence: exact match on the trimmed internal code, then
// case-insensitive exact match on the trimmed name, then auto-creation of an
// inactive client. Name matching deliberately stops at upper-casing: accent
// or abbreviation normalization would change how historical sheets reconcile.
//
// The indexes are a snapshot taken at run start plus the clients created
// during the run, so all 13 month columns of a new client's row (and any
// later duplicate row) resolve to the same record.
type clientResolver struct {
	clientRepo portsrepo.ClientRepositoryFacade
	byCode     map[string]string
	byName     map[string]string
	created    int
}

func newClientResolver(ctx context.Context, clientRepo portsrepo.ClientRepositoryFacade) (*clientResolver, error) {
	clients, err := clientRepo.ListAllClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load client index: %w", err)
	}

	r := &clientResolver{
		clientRepo: clientRepo,
		byCode:     make(map[string]string, len(clients)),
		byName:     make(map[string]string, len(clients)),
	}
	for _, c := range clients {
		if code := strings.TrimSpace(c.InternalCode); code != "" {
			// first registration wins on duplicate historical codes
			if _, ok := r.byCode[code]; !ok {
				r.byCode[code] = c.ClientID
			}
		}
		r.byName[strings.ToUpper(strings.TrimSpace(c.Name))] = c.ClientID
	}
	return r, nil
}

// Resolve returns the client id for a stride, creating an inactive client
// inside the run's transaction when nothing matches. The second return
// reports whether a client was created.
func (r *clientResolver) Resolve(ctx context.Context, tx pgx.Tx, code, name, importUserID string) (string, bool, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if id, ok := r.byCode[code]; ok {
		return id, false, nil
	}
	if id, ok := r.byName[strings.ToUpper(name)]; ok {
		return id, false, nil
	}

	now := time.Now()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		InternalCode: code,
		Name:         name,
		Active:       false, // ex-client found only in historical sheets
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     importUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: importUserID,
		},
	}
	if err := r.clientRepo.SaveClientInTx(ctx, tx, client); err != nil {
		return "", false, fmt.Errorf("failed to create client %s - %s: %w", code, name, err)
	}

	if code != "" {
		r.byCode[code] = client.ClientID
	}
	r.byName[strings.ToUpper(name)] = client.ClientID
	r.created++
	return client.ClientID, true, nil
}
