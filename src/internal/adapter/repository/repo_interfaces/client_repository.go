package repo_interfaces

import (
	"context"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
