package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnvelopeBalance is one row of an aggregated report.
type EnvelopeBalance struct {
	EnvelopeID string          `json:"envelopeID"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
}

// BalanceReport is an ordered mapping from envelope name to the signed sum of its
// transactions in [From, To]. Balances are sorted by name ascending and envelopes
// without transactions in the window are absent.
type BalanceReport struct {
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Balances []EnvelopeBalance `json:"balances"`
}

// Balance looks up the balance for name.
func (r BalanceReport) Balance(name string) (decimal.Decimal, bool) {
	for _, b := range r.Balances {
		if b.Name == name {
			return b.Balance, true
		}
	}
	return decimal.Zero, false
}

// Names returns envelope names in report order.
func (r BalanceReport) Names() []string {
	names := make([]string, len(r.Balances))
	for i, b := range r.Balances {
		names[i] = b.Name
	}
	return names
}

// Map returns the report as an unordered name -> balance map.
func (r BalanceReport) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(r.Balances))
	for _, b := range r.Balances {
		m[b.Name] = b.Balance
	}
	return m
}

// Total sums every balance in the report.
func (r BalanceReport) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Balances {
		total = total.Add(b.Balance)
	}
	return total
}

// Len returns the number of envelopes in the report.
func (r BalanceReport) Len() int {
	return len(r.Balances)
}
