package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/whiteshadows42/AccountManager/src/internal/commons"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
)

type MovementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// PostTransfer applies both balance changes as in-database deltas and records
// the movement inside a single transaction, so a transfer can never commit
// one leg without the other.
func (r *MovementRepository) PostTransfer(ctx context.Context, movement domain.Movement) error {
	logger.Info("movement repository post transfer", logger.Fields{
		"movementId":         movement.ID,
		"originAccount":      movement.OriginAccount,
		"destinationAccount": movement.DestinationAccount,
		"amount":             movement.Amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("movement repository begin tx failed", err, nil)
		return fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const debitOriginQuery = `
UPDATE accounts
SET balance = balance - $2::numeric,
    updated_at = NOW()
WHERE account_number = $1`
	if _, err = execRequiredRows(ctx, tx, debitOriginQuery, movement.OriginAccount, movement.Amount); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			err = fmt.Errorf("%w: origin account %d vanished during posting", domain.ErrConsistency, movement.OriginAccount)
		}
		return err
	}

	const creditDestinationQuery = `
UPDATE accounts
SET balance = balance + $2::numeric,
    updated_at = NOW()
WHERE account_number = $1`
	if _, err = execRequiredRows(ctx, tx, creditDestinationQuery, movement.DestinationAccount, movement.Amount); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			err = fmt.Errorf("%w: destination account %d vanished during posting", domain.ErrConsistency, movement.DestinationAccount)
		}
		return err
	}

	const insertMovementQuery = `
INSERT INTO account_movements (
	id,
	origin_account,
	destination_account,
	amount,
	type,
	date_time,
	created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx,
		insertMovementQuery,
		movement.ID,
		movement.OriginAccount,
		movement.DestinationAccount,
		movement.Amount,
		movement.Type,
		movement.DateTime,
		movement.CreatedBy,
	); err != nil {
		logger.Error("movement repository insert failed", err, logger.Fields{
			"movementId": movement.ID,
		})
		err = fmt.Errorf("insert movement: %w", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("movement repository commit tx failed", err, nil)
		return fmt.Errorf("commit transfer transaction: %w", err)
	}

	logger.Info("movement repository post transfer success", logger.Fields{
		"movementId": movement.ID,
	})

	return nil
}

func (r *MovementRepository) CountMatching(ctx context.Context, filter domain.MovementFilter) (int64, error) {
	query, args := buildFilterClause(`SELECT COUNT(*) FROM account_movements`, filter)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.Error("movement repository count failed", err, logger.Fields{
			"accountNumber": filter.AccountNumber,
		})
		return 0, fmt.Errorf("count movements: %w", err)
	}

	return count, nil
}

func (r *MovementRepository) FindMatching(ctx context.Context, filter domain.MovementFilter, page commons.PageRequest) ([]domain.Movement, error) {
	const selectColumns = `
SELECT id, origin_account, destination_account, amount, type, date_time, created_by
FROM account_movements`

	query, args := buildFilterClause(selectColumns, filter)
	query += fmt.Sprintf(" ORDER BY %s", orderBy(page.Sort))
	args = append(args, page.Limit(), page.Offset())
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("movement repository find failed", err, logger.Fields{
			"accountNumber": filter.AccountNumber,
		})
		return nil, fmt.Errorf("find movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(
			&m.ID,
			&m.OriginAccount,
			&m.DestinationAccount,
			&m.Amount,
			&m.Type,
			&m.DateTime,
			&m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}

	return movements, nil
}

func buildFilterClause(base string, filter domain.MovementFilter) (string, []any) {
	clauses := []string{"(origin_account = $1 OR destination_account = $1)"}
	args := []any{filter.AccountNumber}

	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("date_time >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("date_time <= $%d", len(args)))
	}

	return base + " WHERE " + strings.Join(clauses, " AND "), args
}

// orderBy maps the whitelisted sort fields to their columns. commons.ParseSort
// already rejected everything else, so an unexpected field falls back to the
// insertion timestamp.
func orderBy(sort commons.SortSpec) string {
	column := "date_time"
	if sort.Field == "amount" {
		column = "amount"
	}
	if sort.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}
