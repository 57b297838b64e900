package repo_interfaces

import (
	"context"

	"github.com/whiteshadows42/AccountManager/src/internal/commons"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type MovementRepository interface {
	// PostTransfer debits the origin, credits the destination and records the
	// movement as one atomic unit. Either all three writes commit or none do.
	PostTransfer(ctx context.Context, movement domain.Movement) error
	CountMatching(ctx context.Context, filter domain.MovementFilter) (int64, error)
	FindMatching(ctx context.Context, filter domain.MovementFilter, page commons.PageRequest) ([]domain.Movement, error)
}
