package service_interfaces

import (
	"context"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.AccountRequest) (models.AccountNumberResponse, error)
	GetBalance(ctx context.Context, accountNumber int64) (models.AccountBalanceResponse, error)
	AccountExists(ctx context.Context, accountNumber int64) (bool, error)
	UpdateBalances(ctx context.Context, updates []domain.BalanceUpdate) error
}
