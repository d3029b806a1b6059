package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction. It is derived from the amount's sign.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
	// Move is part of the stored taxonomy but is never assigned by the ledger;
	// transfers are recorded as an income/expense pair sharing a TransferID.
	Move TransactionKind = "move"
)

// KindForAmount returns Income for strictly positive amounts and Expense otherwise.
func KindForAmount(amount decimal.Decimal) TransactionKind {
	if amount.IsPositive() {
		return Income
	}
	return Expense
}

// Transaction is an immutable monetary event belonging to exactly one envelope.
type Transaction struct {
	TransactionID string          `json:"transactionID"`        // Primary Key (UUID)
	EnvelopeID    string          `json:"envelopeID"`           // FK -> envelopes.envelope_id
	EnvelopeName  string          `json:"envelopeName"`         // Resolved envelope, filled on read and create
	Kind          TransactionKind `json:"kind"`                 // income / expense
	Amount        decimal.Decimal `json:"amount"`               // Signed, exact
	Note          string          `json:"note"`                 // Optional free text
	Timestamp     time.Time       `json:"timestamp"`            // When the event happened (UTC)
	TransferID    *string         `json:"transferID,omitempty"` // Shared by both legs of a transfer
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsTransferLeg reports whether the transaction was written by a transfer.
func (t Transaction) IsTransferLeg() bool {
	return t.TransferID != nil && *t.TransferID != ""
}

// Transfer groups the two legs written by a move between envelopes.
type Transfer struct {
	TransferID string      `json:"transferID"`
	Debit      Transaction `json:"debit"`  // Negative leg on the source envelope
	Credit     Transaction `json:"credit"` // Positive leg on the destination envelope
}
