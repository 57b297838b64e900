package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account, clientTaxID string) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
		"type":          account.Type,
	})

	// The owning client reference is resolved in the same statement so a
	// client deleted between the existence check and the insert cannot leave
	// a dangling reference.
	const query = `
INSERT INTO accounts (id, account_number, client_id, type, balance)
SELECT $1, $2, c.id, $3, $4
FROM clients c
WHERE c.tax_id = $5
RETURNING client_id, created_at, updated_at`

	var clientID string
	var createdAt time.Time
	var updatedAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.AccountNumber,
		account.Type,
		account.Balance,
		clientTaxID,
	).Scan(&clientID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository owning client not found", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, fmt.Errorf("%w: client does not exist", domain.ErrRecordNotFound)
		}
		if isUniqueViolation(err) {
			logger.Info("account repository account number collision", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, fmt.Errorf("%w: account number already taken", domain.ErrDuplicateRecord)
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.ClientID = clientID
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt

	logger.Info("account repository create success", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

func (r *AccountRepository) GetBalanceByAccountNumber(ctx context.Context, accountNumber int64) (decimal.Decimal, error) {
	const query = `SELECT balance FROM accounts WHERE account_number = $1`

	var balance decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository balance account not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return decimal.Zero, fmt.Errorf("%w: account %d", domain.ErrRecordNotFound, accountNumber)
		}
		logger.Error("account repository balance lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return decimal.Zero, fmt.Errorf("get balance by account number: %w", err)
	}

	return balance, nil
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		logger.Error("account repository exists check failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return false, fmt.Errorf("account exists by account number: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) UpdateBalances(ctx context.Context, updates []domain.BalanceUpdate) error {
	logger.Info("account repository update balances", logger.Fields{
		"count": len(updates),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("account repository begin tx failed", err, nil)
		return fmt.Errorf("begin balance update transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `
UPDATE accounts
SET balance = $2::numeric,
    updated_at = NOW()
WHERE account_number = $1`

	for _, update := range updates {
		if _, err = execRequiredRows(ctx, tx, query, update.AccountNumber, update.NewBalance); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.Error("account repository commit tx failed", err, nil)
		return fmt.Errorf("commit balance update transaction: %w", err)
	}

	return nil
}

func execRequiredRows(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("execute update: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return 0, fmt.Errorf("%w: update matched no rows", domain.ErrRecordNotFound)
	}

	return rows, nil
}
