package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

func (t AccountType) Label() string {
	switch t {
	case AccountTypeChecking:
		return "Conta Corrente"
	case AccountTypeSavings:
		return "Conta Poupança"
	default:
		return string(t)
	}
}

// accountTypeSpellings maps every accepted spelling, folded with
// normalizeSpelling, to its account type. Symbolic names, display labels and
// the legacy Portuguese names are all accepted.
var accountTypeSpellings = map[string]AccountType{
	"checking":       AccountTypeChecking,
	"conta corrente": AccountTypeChecking,
	"corrente":       AccountTypeChecking,
	"savings":        AccountTypeSavings,
	"conta poupanca": AccountTypeSavings,
	"poupanca":       AccountTypeSavings,
}

func ParseAccountType(label string) (AccountType, error) {
	if t, ok := accountTypeSpellings[normalizeSpelling(label)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown account type %q", ErrValidation, label)
}

type Account struct {
	ID            string
	AccountNumber int64
	ClientID      string
	Type          AccountType
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BalanceUpdate struct {
	AccountNumber int64
	NewBalance    decimal.Decimal
}

var spellingFolder = strings.NewReplacer(
	"á", "a", "â", "a", "ã", "a", "à", "a",
	"ç", "c",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
)

// normalizeSpelling lowers the case and folds the accented characters that
// appear in the Portuguese labels, so "Poupança" and "POUPANCA" compare equal.
func normalizeSpelling(value string) string {
	return spellingFolder.Replace(strings.ToLower(strings.TrimSpace(value)))
}
