package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account, clientTaxID string) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	client, exists := r.store.clients[clientTaxID]
	if !exists {
		return domain.Account{}, fmt.Errorf("%w: client does not exist", domain.ErrRecordNotFound)
	}
	if _, taken := r.store.accounts[account.AccountNumber]; taken {
		return domain.Account{}, fmt.Errorf("%w: account number already taken", domain.ErrDuplicateRecord)
	}

	account.ClientID = client.ID
	r.store.accounts[account.AccountNumber] = account
	return account, nil
}

func (r *AccountRepository) GetBalanceByAccountNumber(ctx context.Context, accountNumber int64) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, exists := r.store.accounts[accountNumber]
	if !exists {
		return decimal.Zero, fmt.Errorf("%w: account %d", domain.ErrRecordNotFound, accountNumber)
	}
	return account.Balance, nil
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, exists := r.store.accounts[accountNumber]
	return exists, nil
}

func (r *AccountRepository) UpdateBalances(ctx context.Context, updates []domain.BalanceUpdate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// All-or-nothing: verify every target before touching any balance.
	for _, update := range updates {
		if _, exists := r.store.accounts[update.AccountNumber]; !exists {
			return fmt.Errorf("%w: account %d", domain.ErrRecordNotFound, update.AccountNumber)
		}
	}

	for _, update := range updates {
		account := r.store.accounts[update.AccountNumber]
		account.Balance = update.NewBalance
		r.store.accounts[update.AccountNumber] = account
	}
	return nil
}

var _ repo_interfaces.AccountRepository = (*AccountRepository)(nil)
