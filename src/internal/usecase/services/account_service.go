package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
	"github.com/whiteshadows42/AccountManager/src/internal/usecase/service_interfaces"
)

const accountNumberAttempts = 5

type AccountService struct {
	accountRepo   repo_interfaces.AccountRepository
	clientService service_interfaces.ClientService
	ids           platform.IDGenerator
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	clientService service_interfaces.ClientService,
	ids platform.IDGenerator,
) *AccountService {
	return &AccountService{
		accountRepo:   accountRepo,
		clientService: clientService,
		ids:           ids,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.AccountRequest) (models.AccountNumberResponse, error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return models.AccountNumberResponse{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		logger.Error("account service create account unknown type", err, nil)
		return models.AccountNumberResponse{}, err
	}

	taxID := domain.NormalizeTaxID(req.ClientTaxID)
	exists, err := s.clientService.ExistsClient(ctx, taxID)
	if err != nil {
		logger.Error("account service create account client lookup failed", err, nil)
		return models.AccountNumberResponse{}, err
	}
	if !exists {
		err := fmt.Errorf("%w: client does not exist", domain.ErrRecordNotFound)
		logger.Error("account service create account client missing", err, nil)
		return models.AccountNumberResponse{}, err
	}

	// Account numbers are drawn at random; a collision surfaces as a unique
	// violation and a fresh number is drawn.
	var created domain.Account
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		account := domain.Account{
			ID:            s.ids.NewID(),
			AccountNumber: randomAccountNumber(),
			Type:          accountType,
			Balance:       decimal.Zero,
		}

		created, err = s.accountRepo.Create(ctx, account, taxID)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateRecord) {
			logger.Error("account service create account repository failed", err, nil)
			return models.AccountNumberResponse{}, err
		}
	}
	if err != nil {
		logger.Error("account service create account exhausted number attempts", err, nil)
		return models.AccountNumberResponse{}, err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
	})

	return models.AccountNumberResponse{AccountNumber: created.AccountNumber}, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNumber int64) (models.AccountBalanceResponse, error) {
	if accountNumber <= 0 {
		return models.AccountBalanceResponse{}, fmt.Errorf("%w: account number must be greater than zero", domain.ErrValidation)
	}

	balance, err := s.accountRepo.GetBalanceByAccountNumber(ctx, accountNumber)
	if err != nil {
		return models.AccountBalanceResponse{}, err
	}

	return models.AccountBalanceResponse{
		AccountNumber:  accountNumber,
		CurrentBalance: balance,
	}, nil
}

func (s *AccountService) AccountExists(ctx context.Context, accountNumber int64) (bool, error) {
	return s.accountRepo.ExistsByAccountNumber(ctx, accountNumber)
}

func (s *AccountService) UpdateBalances(ctx context.Context, updates []domain.BalanceUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: balance updates must not be empty", domain.ErrValidation)
	}
	return s.accountRepo.UpdateBalances(ctx, updates)
}

func randomAccountNumber() int64 {
	return rand.Int63n(math.MaxInt64-1) + 1
}
