package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the storage shape of a transaction row, joined with its envelope name on reads.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	EnvelopeID    string          `json:"envelopeID"`    // FK -> envelopes.envelope_id (Not Null)
	EnvelopeName  string          `json:"envelopeName"`  // Read-only, from the join
	Amount        decimal.Decimal `json:"amount"`        // Signed; NUMERIC(20,8) in Postgres, TEXT in SQLite
	Kind          string          `json:"kind"`          // income / expense / move
	Note          string          `json:"note"`          // Empty when absent
	OccurredAt    time.Time       `json:"occurredAt"`    // Event timestamp (UTC)
	TransferID    *string         `json:"transferID"`    // Nullable
	CreatedAt     time.Time       `json:"createdAt"`
}
