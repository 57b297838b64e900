package models

import (
	"errors"
	"strings"
	"time"
)

type ClientRequest struct {
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

// Validate covers the request-shape checks; the birth-date-in-the-past
// invariant and tax id uniqueness belong to the client service.
func (r ClientRequest) Validate() error {
	var errs []string

	if !isElevenDigitTaxID(r.TaxID) {
		errs = append(errs, "taxId must contain exactly 11 digits")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if _, err := r.ParsedBirthDate(); err != nil {
		errs = append(errs, "birthDate must be a valid YYYY-MM-DD date")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r ClientRequest) ParsedBirthDate() (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(r.BirthDate))
}

type ClientResponse struct {
	ID        string `json:"id"`
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func isElevenDigitTaxID(value string) bool {
	digits := 0
	for _, ch := range strings.TrimSpace(value) {
		switch {
		case ch >= '0' && ch <= '9':
			digits++
		case ch == '.' || ch == '-':
		default:
			return false
		}
	}
	return digits == 11
}
