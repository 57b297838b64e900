package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

func TestClientServiceCreateClient(t *testing.T) {
	env := newTestEnv()

	resp, err := env.clients.CreateClient(context.Background(), models.ClientRequest{
		TaxID:     "619.874.460-46",
		Name:      "Maria Silva",
		BirthDate: "1985-03-20",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if resp.TaxID != "61987446046" {
		t.Fatalf("expected normalized tax id 61987446046, got %q", resp.TaxID)
	}
	if resp.ID == "" {
		t.Fatal("expected a client id to be assigned")
	}
}

func TestClientServiceCreateClientDuplicateNormalizedTaxID(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, "619.874.460-46")

	_, err := env.clients.CreateClient(context.Background(), models.ClientRequest{
		TaxID:     "61987446046",
		Name:      "Other",
		BirthDate: "1990-01-01",
	})
	if !errors.Is(err, domain.ErrDuplicateRecord) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestClientServiceCreateClientBirthDateNotInPast(t *testing.T) {
	env := newTestEnv()

	for _, birthDate := range []string{"2030-01-01", "2024-05-10"} {
		_, err := env.clients.CreateClient(context.Background(), models.ClientRequest{
			TaxID:     testTaxID,
			Name:      "Test",
			BirthDate: birthDate,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for birth date %s, got %v", birthDate, err)
		}
	}
}

func TestClientServiceCreateClientValidationError(t *testing.T) {
	env := newTestEnv()

	_, err := env.clients.CreateClient(context.Background(), models.ClientRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty request, got %v", err)
	}
}

func TestClientServiceExistsClientNormalizesTaxID(t *testing.T) {
	env := newTestEnv()
	createTestClient(t, env, "61987446046")

	exists, err := env.clients.ExistsClient(context.Background(), "619.874.460-46")
	if err != nil {
		t.Fatalf("exists client: %v", err)
	}
	if !exists {
		t.Fatal("expected formatted tax id to resolve to the registered client")
	}

	exists, err = env.clients.ExistsClient(context.Background(), "00000000000")
	if err != nil {
		t.Fatalf("exists client: %v", err)
	}
	if exists {
		t.Fatal("expected unknown tax id to not exist")
	}
}
