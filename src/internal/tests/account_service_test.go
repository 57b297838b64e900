package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
	"github.com/whiteshadows42/AccountManager/src/internal/usecase/services"
)

func TestAccountServiceCreateAccount(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, testTaxID)

	first := createTestAccount(t, env, testTaxID)
	second := createTestAccount(t, env, testTaxID)

	if first <= 0 || second <= 0 {
		t.Fatalf("expected positive account numbers, got %d and %d", first, second)
	}
	if first == second {
		t.Fatalf("expected distinct account numbers, got %d twice", first)
	}

	balance, err := env.accounts.GetBalance(context.Background(), first)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.CurrentBalance.IsZero() {
		t.Fatalf("expected a new account to start at zero, got %s", balance.CurrentBalance)
	}
}

func TestAccountServiceCreateAccountUnknownClient(t *testing.T) {
	env := newTestEnv()

	_, err := env.accounts.CreateAccount(context.Background(), models.AccountRequest{
		ClientTaxID: testTaxID,
		AccountType: "CHECKING",
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected not found error for unknown client, got %v", err)
	}
}

func TestAccountServiceCreateAccountTypeSpellings(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, testTaxID)

	for _, accountType := range []string{"CHECKING", "Conta Corrente", "corrente", "SAVINGS", "conta poupança", "POUPANCA"} {
		_, err := env.accounts.CreateAccount(context.Background(), models.AccountRequest{
			ClientTaxID: testTaxID,
			AccountType: accountType,
		})
		if err != nil {
			t.Fatalf("expected account type %q to be accepted, got %v", accountType, err)
		}
	}

	_, err := env.accounts.CreateAccount(context.Background(), models.AccountRequest{
		ClientTaxID: testTaxID,
		AccountType: "Invalid",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown account type, got %v", err)
	}
}

// scriptedAccountRepo fails the first collisions calls to Create with a
// duplicate error, simulating account number collisions.
type scriptedAccountRepo struct {
	collisions int
	attempts   int
	numbers    []int64
}

func (r *scriptedAccountRepo) Create(_ context.Context, account domain.Account, _ string) (domain.Account, error) {
	r.attempts++
	r.numbers = append(r.numbers, account.AccountNumber)
	if r.attempts <= r.collisions {
		return domain.Account{}, fmt.Errorf("%w: account number already in use", domain.ErrDuplicateRecord)
	}
	return account, nil
}

func (r *scriptedAccountRepo) GetBalanceByAccountNumber(context.Context, int64) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *scriptedAccountRepo) ExistsByAccountNumber(context.Context, int64) (bool, error) {
	return true, nil
}

func (r *scriptedAccountRepo) UpdateBalances(context.Context, []domain.BalanceUpdate) error {
	return nil
}

type staticClientService struct{}

func (staticClientService) CreateClient(_ context.Context, _ models.ClientRequest) (models.ClientResponse, error) {
	return models.ClientResponse{}, nil
}

func (staticClientService) ExistsClient(context.Context, string) (bool, error) {
	return true, nil
}

func TestAccountServiceCreateAccountRetriesOnNumberCollision(t *testing.T) {
	repo := &scriptedAccountRepo{collisions: 2}
	service := services.NewAccountService(repo, staticClientService{}, platform.UUIDGenerator{})

	resp, err := service.CreateAccount(context.Background(), models.AccountRequest{
		ClientTaxID: testTaxID,
		AccountType: "CHECKING",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if repo.attempts != 3 {
		t.Fatalf("expected 3 create attempts, got %d", repo.attempts)
	}
	if resp.AccountNumber != repo.numbers[2] {
		t.Fatalf("expected the third drawn number %d, got %d", repo.numbers[2], resp.AccountNumber)
	}
}

func TestAccountServiceCreateAccountExhaustsNumberAttempts(t *testing.T) {
	repo := &scriptedAccountRepo{collisions: 10}
	service := services.NewAccountService(repo, staticClientService{}, platform.UUIDGenerator{})

	_, err := service.CreateAccount(context.Background(), models.AccountRequest{
		ClientTaxID: testTaxID,
		AccountType: "CHECKING",
	})
	if !errors.Is(err, domain.ErrDuplicateRecord) {
		t.Fatalf("expected duplicate error after exhausting attempts, got %v", err)
	}
	if repo.attempts != 5 {
		t.Fatalf("expected 5 create attempts, got %d", repo.attempts)
	}
}

func TestAccountServiceGetBalanceValidation(t *testing.T) {
	env := newTestEnv()

	_, err := env.accounts.GetBalance(context.Background(), 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for non-positive account number, got %v", err)
	}

	_, err = env.accounts.GetBalance(context.Background(), 42)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected not found error for unknown account, got %v", err)
	}
}

func TestAccountServiceUpdateBalances(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, testTaxID)
	number := createTestAccount(t, env, testTaxID)

	err := env.accounts.UpdateBalances(context.Background(), nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty updates, got %v", err)
	}

	newBalance := decimal.RequireFromString("150.75")
	err = env.accounts.UpdateBalances(context.Background(), []domain.BalanceUpdate{
		{AccountNumber: number, NewBalance: newBalance},
	})
	if err != nil {
		t.Fatalf("update balances: %v", err)
	}

	balance, err := env.accounts.GetBalance(context.Background(), number)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.CurrentBalance.Equal(newBalance) {
		t.Fatalf("expected balance %s, got %s", newBalance, balance.CurrentBalance)
	}
}

func TestAccountServiceUpdateBalancesUnknownAccountIsAtomic(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, testTaxID)
	number := createTestAccount(t, env, testTaxID)

	err := env.accounts.UpdateBalances(context.Background(), []domain.BalanceUpdate{
		{AccountNumber: number, NewBalance: decimal.RequireFromString("99.99")},
		{AccountNumber: number + 1, NewBalance: decimal.RequireFromString("1.00")},
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected not found error when one account is unknown, got %v", err)
	}

	balance, err := env.accounts.GetBalance(context.Background(), number)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.CurrentBalance.IsZero() {
		t.Fatalf("expected the known account to be untouched, got %s", balance.CurrentBalance)
	}
}
