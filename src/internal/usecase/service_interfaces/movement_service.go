package service_interfaces

import (
	"context"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
)

type MovementService interface {
	Transfer(ctx context.Context, req models.TransferRequest) error
	History(ctx context.Context, accountNumber string, startDate, endDate *time.Time, page commons.PageRequest) (commons.Page[models.MovementResponse], error)
}
