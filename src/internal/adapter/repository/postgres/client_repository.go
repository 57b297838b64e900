package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	logger.Info("client repository create", logger.Fields{
		"clientId": client.ID,
	})

	const query = `
INSERT INTO clients (
	id,
	tax_id,
	name,
	birth_date
) VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		client.ID,
		client.TaxID,
		client.Name,
		client.BirthDate,
	).Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			logger.Info("client repository duplicate tax id", logger.Fields{
				"clientId": client.ID,
			})
			return domain.Client{}, fmt.Errorf("%w: tax id already registered", domain.ErrDuplicateRecord)
		}
		logger.Error("client repository create failed", err, logger.Fields{
			"clientId": client.ID,
		})
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}

	client.CreatedAt = createdAt
	client.UpdatedAt = updatedAt

	logger.Info("client repository create success", logger.Fields{
		"clientId": client.ID,
	})

	return client, nil
}

func (r *ClientRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM clients WHERE tax_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, taxID).Scan(&exists); err != nil {
		logger.Error("client repository exists check failed", err, nil)
		return false, fmt.Errorf("client exists by tax id: %w", err)
	}

	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
