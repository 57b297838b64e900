package service_interfaces

import (
	"context"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
)

type ClientService interface {
	CreateClient(ctx context.Context, req models.ClientRequest) (models.ClientResponse, error)
	ExistsClient(ctx context.Context, taxID string) (bool, error)
}
