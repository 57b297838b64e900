package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementRecorded is emitted after a transfer has been committed.
type MovementRecorded struct {
	MovementID         string          `json:"movement_id"`
	OriginAccount      int64           `json:"origin_account"`
	DestinationAccount int64           `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

type Publisher interface {
	PublishMovementRecorded(ctx context.Context, event MovementRecorded) error
}

// NoopPublisher is wired when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishMovementRecorded(context.Context, MovementRecorded) error {
	return nil
}
