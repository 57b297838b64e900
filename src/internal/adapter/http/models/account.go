package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountRequest struct {
	ClientTaxID string `json:"clientTaxId"`
	AccountType string `json:"accountType"`
}

func (r AccountRequest) Validate() error {
	var errs []string

	if !isElevenDigitTaxID(r.ClientTaxID) {
		errs = append(errs, "clientTaxId must contain exactly 11 digits")
	}
	if strings.TrimSpace(r.AccountType) == "" {
		errs = append(errs, "accountType is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AccountNumberResponse struct {
	AccountNumber int64 `json:"accountNumber"`
}

// AccountBalanceResponse is the balance projection: it exposes nothing about
// the account beyond its number and current balance.
type AccountBalanceResponse struct {
	AccountNumber  int64           `json:"accountNumber"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
