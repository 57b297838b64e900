package services_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/memory"
	"github.com/whiteshadows42/AccountManager/src/internal/events"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
	"github.com/whiteshadows42/AccountManager/src/internal/usecase/services"
)

// Fixed offset instead of a zone name so the tests do not depend on tzdata
// being installed.
var testZone = time.FixedZone("-03", -3*60*60)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type capturingPublisher struct {
	published []events.MovementRecorded
}

func (p *capturingPublisher) PublishMovementRecorded(_ context.Context, event events.MovementRecorded) error {
	p.published = append(p.published, event)
	return nil
}

type testEnv struct {
	clock     *fixedClock
	publisher *capturingPublisher
	clients   *services.ClientService
	accounts  *services.AccountService
	movements *services.MovementService
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	clock := &fixedClock{now: time.Date(2024, 5, 10, 15, 0, 0, 0, testZone)}
	publisher := &capturingPublisher{}
	ids := platform.UUIDGenerator{}

	clients := services.NewClientService(memory.NewClientRepository(store), ids, clock)
	accounts := services.NewAccountService(memory.NewAccountRepository(store), clients, ids)
	movements := services.NewMovementService(memory.NewMovementRepository(store), accounts, publisher, ids, clock)

	return &testEnv{
		clock:     clock,
		publisher: publisher,
		clients:   clients,
		accounts:  accounts,
		movements: movements,
	}
}

const testTaxID = "62368887016"

func createTestClient(t *testing.T, env *testEnv, taxID string) {
	t.Helper()

	_, err := env.clients.CreateClient(context.Background(), models.ClientRequest{
		TaxID:     taxID,
		Name:      "Test",
		BirthDate: "1990-01-01",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
}

func formatAccountNumber(number int64) string {
	return strconv.FormatInt(number, 10)
}

func createTestAccount(t *testing.T, env *testEnv, taxID string) int64 {
	t.Helper()

	resp, err := env.accounts.CreateAccount(context.Background(), models.AccountRequest{
		ClientTaxID: taxID,
		AccountType: "CHECKING",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	return resp.AccountNumber
}
