package domain

import "time"

type Client struct {
	ID        string
	TaxID     string
	Name      string
	BirthDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeTaxID strips formatting punctuation so "619.874.460-46" and
// "61987446046" resolve to the same identity.
func NormalizeTaxID(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}
