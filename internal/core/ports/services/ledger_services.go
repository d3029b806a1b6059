package services

import (
	"context"
	"time"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerWriterSvc defines write operations on the ledger
type LedgerWriterSvc interface {
	// AddTransaction records a signed amount against the named envelope, creating the
	// envelope with a zero budget if it does not exist. A nil at means now.
	AddTransaction(ctx context.Context, envelopeName string, amount decimal.Decimal, note string, at *time.Time) (*domain.Transaction, error)

	// Move transfers a strictly positive amount from source to destination as two linked legs.
	Move(ctx context.Context, source, destination string, amount decimal.Decimal) (*domain.Transfer, error)

	// CloseMonth rolls every nonzero balance of the month into the next one and marks it closed.
	CloseMonth(ctx context.Context, year, month int) error
}

// LedgerReportSvc defines aggregation operations
type LedgerReportSvc interface {
	// Report sums transactions per envelope between two calendar days, both inclusive.
	Report(ctx context.Context, startDate, endDate time.Time) (*domain.BalanceReport, error)

	// ReportMonth is Report over the first and last day of a calendar month.
	ReportMonth(ctx context.Context, year, month int) (*domain.BalanceReport, error)
}

// LedgerReaderSvc defines read operations on envelopes and history
type LedgerReaderSvc interface {
	ListEnvelopes(ctx context.Context) ([]domain.Envelope, error)

	// ListEnvelopeTransactions pages through one envelope's transactions, newest first.
	ListEnvelopeTransactions(ctx context.Context, envelopeName string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	IsMonthClosed(ctx context.Context, year, month int) (bool, error)
}

// LedgerSvcFacade combines all ledger service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReportSvc
	LedgerReaderSvc
}
