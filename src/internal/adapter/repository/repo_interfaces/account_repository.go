package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type AccountRepository interface {
	// Create persists the account and resolves the owning client reference
	// from its normalized tax id. Returns domain.ErrRecordNotFound when the
	// client does not exist and domain.ErrDuplicateRecord when the drawn
	// account number is already taken.
	Create(ctx context.Context, account domain.Account, clientTaxID string) (domain.Account, error)
	GetBalanceByAccountNumber(ctx context.Context, accountNumber int64) (decimal.Decimal, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error)
	// UpdateBalances applies the absolute balance sets as an all-or-nothing
	// batch.
	UpdateBalances(ctx context.Context, updates []domain.BalanceUpdate) error
}
