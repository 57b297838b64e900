package memory

import (
	"context"
	"fmt"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.clients[client.TaxID]; exists {
		return domain.Client{}, fmt.Errorf("%w: tax id already registered", domain.ErrDuplicateRecord)
	}

	r.store.clients[client.TaxID] = client
	return client, nil
}

func (r *ClientRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, exists := r.store.clients[taxID]
	return exists, nil
}

var _ repo_interfaces.ClientRepository = (*ClientRepository)(nil)
