package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

// EnvelopeReader defines read operations for envelopes
type EnvelopeReader interface {
	// FindEnvelopeByName looks an envelope up by exact, case-sensitive name.
	// Returns apperrors.ErrNotFound if no envelope carries that name.
	FindEnvelopeByName(ctx context.Context, name string) (*domain.Envelope, error)

	// ListEnvelopes returns every envelope ordered by name.
	ListEnvelopes(ctx context.Context) ([]domain.Envelope, error)
}

// EnvelopeWriter defines write operations for envelopes
type EnvelopeWriter interface {
	// CreateEnvelope inserts a new envelope, failing with apperrors.ErrDuplicate on a name clash.
	CreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error)

	// GetOrCreateEnvelope inserts the envelope unless one with the same name exists,
	// and returns whichever row ends up stored. Safe under concurrent callers.
	GetOrCreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error)
}

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// ListTransactionsByEnvelope returns one envelope's transactions newest first using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByEnvelope(ctx context.Context, envelopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	// InsertTransaction persists an immutable transaction.
	InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// BalanceReader aggregates transactions.
type BalanceReader interface {
	// SumTransactionsByEnvelope sums amounts per envelope for timestamps in [from, to),
	// ordered by envelope name. Envelopes with no transactions in the window are omitted.
	SumTransactionsByEnvelope(ctx context.Context, from, to time.Time) ([]domain.EnvelopeBalance, error)
}

// ClosedMonthManager tracks finalized months.
type ClosedMonthManager interface {
	IsMonthClosed(ctx context.Context, period domain.Period) (bool, error)
	// MarkMonthClosed fails with apperrors.ErrDuplicate if the period is already marked.
	MarkMonthClosed(ctx context.Context, month domain.ClosedMonth) error
}

// LedgerStore combines all ledger repository interfaces
// This is the persistence gateway consumed by the ledger engine
type LedgerStore interface {
	EnvelopeReader
	EnvelopeWriter
	TransactionReader
	TransactionWriter
	BalanceReader
	ClosedMonthManager
	UnitOfWork
}
