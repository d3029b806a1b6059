package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Envelope is the storage shape of an envelope row.
type Envelope struct {
	EnvelopeID string          `json:"envelopeID"` // Primary Key (UUID)
	Name       string          `json:"name"`       // Unique (Not Null)
	Budget     decimal.Decimal `json:"budget"`     // NUMERIC(20,8), default 0
	CreatedAt  time.Time       `json:"createdAt"`  // DATE
}
