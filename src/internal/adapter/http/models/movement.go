package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	OriginAccountNumber      int64           `json:"originAccountNumber"`
	DestinationAccountNumber int64           `json:"destinationAccountNumber"`
	Amount                   decimal.Decimal `json:"amount"`
	Type                     string          `json:"type"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Type) == "" {
		errs = append(errs, "type is required")
	}
	if r.OriginAccountNumber <= 0 {
		errs = append(errs, "originAccountNumber must be greater than zero")
	}
	if r.DestinationAccountNumber <= 0 {
		errs = append(errs, "destinationAccountNumber must be greater than zero")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type MovementResponse struct {
	OriginAccountNumber      int64           `json:"originAccountNumber"`
	DestinationAccountNumber int64           `json:"destinationAccountNumber"`
	Amount                   decimal.Decimal `json:"amount"`
	Type                     string          `json:"type"`
	DateTime                 time.Time       `json:"dateTime"`
}
