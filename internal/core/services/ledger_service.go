package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/utils/accounting"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	rolloverNote = "rollover to next month"
	openingNote  = "opening balance"
)

// ledgerService provides the envelope ledger operations. It holds no state of its
// own beyond its collaborators and never logs; see NewLoggingLedgerService.
type ledgerService struct {
	store portsrepo.LedgerStore
	now   func() time.Time
	newID func() string
}

// ServiceOption is a functional option for configuring the ledger service
type ServiceOption func(*ledgerService)

// WithClock replaces time.Now as the source of default timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString for envelope, transaction and transfer IDs.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *ledgerService) {
		s.newID = newID
	}
}

// NewLedgerService creates the ledger engine on top of a persistence gateway.
func NewLedgerService(store portsrepo.LedgerStore, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// clock returns the current instant in UTC at storage precision.
func (s *ledgerService) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// startOfDay keeps the calendar date as seen in t's own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveOrCreate returns the envelope with exactly this name, creating it with a zero
// budget when absent. Creation goes through the gateway's insert-or-fetch primitive.
func (s *ledgerService) resolveOrCreate(ctx context.Context, store portsrepo.LedgerStore, name string, now time.Time) (*domain.Envelope, error) {
	return store.GetOrCreateEnvelope(ctx, domain.Envelope{
		EnvelopeID: s.newID(),
		Name:       name,
		Budget:     decimal.Zero,
		CreatedAt:  startOfDay(now),
	})
}

func (s *ledgerService) newTransaction(envelope *domain.Envelope, amount decimal.Decimal, note string, ts, now time.Time, transferID *string) domain.Transaction {
	return domain.Transaction{
		TransactionID: s.newID(),
		EnvelopeID:    envelope.EnvelopeID,
		EnvelopeName:  envelope.Name,
		Kind:          domain.KindForAmount(amount),
		Amount:        amount,
		Note:          note,
		Timestamp:     ts,
		TransferID:    transferID,
		CreatedAt:     now,
	}
}

func (s *ledgerService) AddTransaction(ctx context.Context, envelopeName string, amount decimal.Decimal, note string, at *time.Time) (*domain.Transaction, error) {
	if err := domain.ValidateEnvelopeName(envelopeName); err != nil {
		return nil, err
	}

	now := s.clock()
	ts := now
	if at != nil {
		ts = at.UTC().Truncate(time.Microsecond)
	}

	var created *domain.Transaction
	err := s.store.RunAtomic(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		envelope, err := s.resolveOrCreate(ctx, store, envelopeName, now)
		if err != nil {
			return err
		}
		created, err = store.InsertTransaction(ctx, s.newTransaction(envelope, amount, note, ts, now, nil))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ledgerService) Move(ctx context.Context, source, destination string, amount decimal.Decimal) (*domain.Transfer, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if err := domain.ValidateEnvelopeName(source); err != nil {
		return nil, err
	}
	if err := domain.ValidateEnvelopeName(destination); err != nil {
		return nil, err
	}

	now := s.clock()
	transfer := &domain.Transfer{TransferID: s.newID()}
	transferID := transfer.TransferID

	err := s.store.RunAtomic(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		src, err := s.resolveOrCreate(ctx, store, source, now)
		if err != nil {
			return err
		}
		dst, err := s.resolveOrCreate(ctx, store, destination, now)
		if err != nil {
			return err
		}

		legs := []domain.Transaction{
			s.newTransaction(src, amount.Neg(), "transfer to "+destination, now, now, &transferID),
			s.newTransaction(dst, amount, "transfer from "+source, now, now, &transferID),
		}
		if err := accounting.ValidateTransferBalance(legs); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidAmount, err)
		}

		debit, err := store.InsertTransaction(ctx, legs[0])
		if err != nil {
			return err
		}
		credit, err := store.InsertTransaction(ctx, legs[1])
		if err != nil {
			return err
		}

		transfer.Debit = *debit
		transfer.Credit = *credit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

func (s *ledgerService) Report(ctx context.Context, startDate, endDate time.Time) (*domain.BalanceReport, error) {
	from := startOfDay(startDate)
	to := startOfDay(endDate)
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", apperrors.ErrInvalidDateRange, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return s.sumWindow(ctx, s.store, from, to)
}

// sumWindow aggregates the calendar days [from, to], both inclusive.
func (s *ledgerService) sumWindow(ctx context.Context, store portsrepo.BalanceReader, from, to time.Time) (*domain.BalanceReport, error) {
	balances, err := store.SumTransactionsByEnvelope(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if balances == nil {
		balances = []domain.EnvelopeBalance{}
	}
	return &domain.BalanceReport{From: from, To: to, Balances: balances}, nil
}

func (s *ledgerService) ReportMonth(ctx context.Context, year, month int) (*domain.BalanceReport, error) {
	period, err := domain.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}
	return s.Report(ctx, period.FirstDay(), period.LastDay())
}

func (s *ledgerService) CloseMonth(ctx context.Context, year, month int) error {
	period, err := domain.NewPeriod(year, month)
	if err != nil {
		return err
	}

	now := s.clock()
	next := period.Next()

	return s.store.RunAtomic(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		closed, err := store.IsMonthClosed(ctx, period)
		if err != nil {
			return err
		}
		if closed {
			return fmt.Errorf("%w: %s", apperrors.ErrMonthAlreadyClosed, period)
		}

		report, err := s.sumWindow(ctx, store, period.FirstDay(), period.LastDay())
		if err != nil {
			return err
		}

		for _, b := range report.Balances {
			if b.Balance.IsZero() {
				continue
			}
			envelope := &domain.Envelope{EnvelopeID: b.EnvelopeID, Name: b.Name}

			if _, err := store.InsertTransaction(ctx, s.newTransaction(envelope, b.Balance.Neg(), rolloverNote, period.LastInstant(), now, nil)); err != nil {
				return err
			}
			if _, err := store.InsertTransaction(ctx, s.newTransaction(envelope, b.Balance, openingNote, next.Start(), now, nil)); err != nil {
				return err
			}
		}

		err = store.MarkMonthClosed(ctx, domain.ClosedMonth{Period: period, ClosedAt: now})
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: %s", apperrors.ErrMonthAlreadyClosed, period)
		}
		return err
	})
}

func (s *ledgerService) ListEnvelopes(ctx context.Context) ([]domain.Envelope, error) {
	envelopes, err := s.store.ListEnvelopes(ctx)
	if err != nil {
		return nil, err
	}
	if envelopes == nil {
		envelopes = []domain.Envelope{}
	}
	return envelopes, nil
}

func (s *ledgerService) ListEnvelopeTransactions(ctx context.Context, envelopeName string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if err := domain.ValidateEnvelopeName(envelopeName); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	envelope, err := s.store.FindEnvelopeByName(ctx, envelopeName)
	if err != nil {
		return nil, nil, err
	}

	txns, next, err := s.store.ListTransactionsByEnvelope(ctx, envelope.EnvelopeID, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	for i := range txns {
		txns[i].EnvelopeName = envelope.Name
	}
	return txns, next, nil
}

func (s *ledgerService) IsMonthClosed(ctx context.Context, year, month int) (bool, error) {
	period, err := domain.NewPeriod(year, month)
	if err != nil {
		return false, err
	}
	return s.store.IsMonthClosed(ctx, period)
}
