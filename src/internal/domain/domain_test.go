package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

func TestNormalizeTaxID(t *testing.T) {
	cases := map[string]string{
		"619.874.460-46":   "61987446046",
		"61987446046":      "61987446046",
		" 623.688.870-16 ": "62368887016",
		"":                 "",
	}
	for input, want := range cases {
		if got := domain.NormalizeTaxID(input); got != want {
			t.Fatalf("NormalizeTaxID(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseAccountType(t *testing.T) {
	checking := []string{"CHECKING", "checking", "Conta Corrente", "conta corrente", "CORRENTE"}
	for _, spelling := range checking {
		parsed, err := domain.ParseAccountType(spelling)
		if err != nil {
			t.Fatalf("ParseAccountType(%q): %v", spelling, err)
		}
		if parsed != domain.AccountTypeChecking {
			t.Fatalf("ParseAccountType(%q) = %q, want checking", spelling, parsed)
		}
	}

	savings := []string{"SAVINGS", "Conta Poupança", "conta poupanca", "POUPANÇA"}
	for _, spelling := range savings {
		parsed, err := domain.ParseAccountType(spelling)
		if err != nil {
			t.Fatalf("ParseAccountType(%q): %v", spelling, err)
		}
		if parsed != domain.AccountTypeSavings {
			t.Fatalf("ParseAccountType(%q) = %q, want savings", spelling, parsed)
		}
	}

	if _, err := domain.ParseAccountType("Invalid"); err == nil {
		t.Fatal("expected an error for an unknown account type")
	}
}

func TestParseMovementType(t *testing.T) {
	for _, spelling := range []string{"TRANSFERENCIA", "Transferência", "transferencia", "transfer"} {
		parsed, err := domain.ParseMovementType(spelling)
		if err != nil {
			t.Fatalf("ParseMovementType(%q): %v", spelling, err)
		}
		if parsed != domain.MovementTypeTransfer {
			t.Fatalf("ParseMovementType(%q) = %q, want transfer", spelling, parsed)
		}
	}

	if _, err := domain.ParseMovementType("Invalid"); err == nil {
		t.Fatal("expected an error for an unknown movement type")
	}

	if label := domain.MovementTypeTransfer.Label(); label != "Transferência" {
		t.Fatalf("expected label Transferência, got %q", label)
	}
}

func TestMovementFilterMatches(t *testing.T) {
	at := func(day, hour int) time.Time {
		return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
	}
	movement := domain.Movement{
		OriginAccount:      100,
		DestinationAccount: 200,
		Amount:             decimal.RequireFromString("10.00"),
		DateTime:           at(10, 12),
	}

	from := at(10, 0)
	to := at(11, 0)

	cases := []struct {
		name   string
		filter domain.MovementFilter
		want   bool
	}{
		{"matches as origin", domain.MovementFilter{AccountNumber: 100}, true},
		{"matches as destination", domain.MovementFilter{AccountNumber: 200}, true},
		{"other account", domain.MovementFilter{AccountNumber: 300}, false},
		{"inside range", domain.MovementFilter{AccountNumber: 100, From: &from, To: &to}, true},
		{"before range", domain.MovementFilter{AccountNumber: 100, From: &to}, false},
		{"after range", domain.MovementFilter{AccountNumber: 100, To: &from}, false},
	}

	for _, tc := range cases {
		if got := tc.filter.Matches(movement); got != tc.want {
			t.Fatalf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}
