package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const MovementTypeTransfer MovementType = "TRANSFERENCIA"

func (t MovementType) Label() string {
	if t == MovementTypeTransfer {
		return "Transferência"
	}
	return string(t)
}

var movementTypeSpellings = map[string]MovementType{
	"transferencia": MovementTypeTransfer,
	"transfer":      MovementTypeTransfer,
}

func ParseMovementType(label string) (MovementType, error) {
	if t, ok := movementTypeSpellings[normalizeSpelling(label)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown movement type %q", ErrValidation, label)
}

// Movement is an immutable record of a completed transfer. Rows are only ever
// inserted, never updated or deleted.
type Movement struct {
	ID                 string
	OriginAccount      int64
	DestinationAccount int64
	Amount             decimal.Decimal
	Type               MovementType
	DateTime           time.Time
	CreatedBy          string
}

// MovementFilter selects movements touching AccountNumber as origin or
// destination, optionally bounded by inclusive timestamps.
type MovementFilter struct {
	AccountNumber int64
	From          *time.Time
	To            *time.Time
}

// Matches reports whether a movement satisfies the filter. The postgres
// repository translates the same conditions to SQL; the in-memory repository
// evaluates them directly.
func (f MovementFilter) Matches(m Movement) bool {
	if m.OriginAccount != f.AccountNumber && m.DestinationAccount != f.AccountNumber {
		return false
	}
	if f.From != nil && m.DateTime.Before(*f.From) {
		return false
	}
	if f.To != nil && m.DateTime.After(*f.To) {
		return false
	}
	return true
}
