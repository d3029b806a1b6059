package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
)

// loggingLedgerService wraps a LedgerSvcFacade and logs the outcome of every call
// with the request-scoped logger.
type loggingLedgerService struct {
	BaseService
	next portssvc.LedgerSvcFacade
}

// NewLoggingLedgerService decorates next with structured logging. logger is used
// when the context carries none.
func NewLoggingLedgerService(next portssvc.LedgerSvcFacade, logger *slog.Logger) portssvc.LedgerSvcFacade {
	return &loggingLedgerService{
		BaseService: BaseService{Logger: logger},
		next:        next,
	}
}

var _ portssvc.LedgerSvcFacade = (*loggingLedgerService)(nil)

func (s *loggingLedgerService) AddTransaction(ctx context.Context, envelopeName string, amount decimal.Decimal, note string, at *time.Time) (*domain.Transaction, error) {
	txn, err := s.next.AddTransaction(ctx, envelopeName, amount, note, at)
	if err != nil {
		s.LogError(ctx, err, "Failed to add transaction", slog.String("envelope", envelopeName), slog.String("amount", amount.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("envelope", txn.EnvelopeName),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()))
	return txn, nil
}

func (s *loggingLedgerService) Move(ctx context.Context, source, destination string, amount decimal.Decimal) (*domain.Transfer, error) {
	transfer, err := s.next.Move(ctx, source, destination, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to move funds",
			slog.String("source", source),
			slog.String("destination", destination),
			slog.String("amount", amount.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Funds moved",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("source", source),
		slog.String("destination", destination),
		slog.String("amount", amount.String()))
	return transfer, nil
}

func (s *loggingLedgerService) CloseMonth(ctx context.Context, year, month int) error {
	if err := s.next.CloseMonth(ctx, year, month); err != nil {
		s.LogError(ctx, err, "Failed to close month", slog.Int("year", year), slog.Int("month", month))
		return err
	}
	s.LogInfo(ctx, "Month closed", slog.Int("year", year), slog.Int("month", month))
	return nil
}

func (s *loggingLedgerService) Report(ctx context.Context, startDate, endDate time.Time) (*domain.BalanceReport, error) {
	report, err := s.next.Report(ctx, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to build report",
			slog.String("start", startDate.Format(time.DateOnly)),
			slog.String("end", endDate.Format(time.DateOnly)))
		return nil, err
	}
	s.LogDebug(ctx, "Report built",
		slog.String("start", report.From.Format(time.DateOnly)),
		slog.String("end", report.To.Format(time.DateOnly)),
		slog.Int("envelopes", report.Len()))
	return report, nil
}

func (s *loggingLedgerService) ReportMonth(ctx context.Context, year, month int) (*domain.BalanceReport, error) {
	report, err := s.next.ReportMonth(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to build month report", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}
	s.LogDebug(ctx, "Month report built", slog.Int("year", year), slog.Int("month", month), slog.Int("envelopes", report.Len()))
	return report, nil
}

func (s *loggingLedgerService) ListEnvelopes(ctx context.Context) ([]domain.Envelope, error) {
	envelopes, err := s.next.ListEnvelopes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list envelopes")
		return nil, err
	}
	s.LogDebug(ctx, "Envelopes listed", slog.Int("count", len(envelopes)))
	return envelopes, nil
}

func (s *loggingLedgerService) ListEnvelopeTransactions(ctx context.Context, envelopeName string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	txns, next, err := s.next.ListEnvelopeTransactions(ctx, envelopeName, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list envelope transactions", slog.String("envelope", envelopeName))
		return nil, nil, err
	}
	s.LogDebug(ctx, "Envelope transactions listed",
		slog.String("envelope", envelopeName),
		slog.Int("count", len(txns)),
		slog.Bool("has_more", next != nil))
	return txns, next, nil
}

func (s *loggingLedgerService) IsMonthClosed(ctx context.Context, year, month int) (bool, error) {
	closed, err := s.next.IsMonthClosed(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to check month status", slog.Int("year", year), slog.Int("month", month))
		return false, err
	}
	return closed, nil
}
