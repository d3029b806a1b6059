package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	"github.com/SscSPs/budgetwise/internal/utils/pagination"
)

type state struct {
	envelopes    map[string]domain.Envelope // by envelope ID
	names        map[string]string          // name -> envelope ID
	transactions []domain.Transaction        // insertion order
	closed       map[domain.Period]domain.ClosedMonth
}

func newState() *state {
	return &state{
		envelopes: make(map[string]domain.Envelope),
		names:     make(map[string]string),
		closed:    make(map[domain.Period]domain.ClosedMonth),
	}
}

func (s *state) clone() *state {
	c := &state{
		envelopes:    make(map[string]domain.Envelope, len(s.envelopes)),
		names:        make(map[string]string, len(s.names)),
		transactions: make([]domain.Transaction, len(s.transactions)),
		closed:       make(map[domain.Period]domain.ClosedMonth, len(s.closed)),
	}
	for k, v := range s.envelopes {
		c.envelopes[k] = v
	}
	for k, v := range s.names {
		c.names[k] = v
	}
	copy(c.transactions, s.transactions)
	for k, v := range s.closed {
		c.closed[k] = v
	}
	return c
}

// Store is an in-memory LedgerStore. A single mutex guards the state and is held
// for the whole of a RunAtomic unit, so units are serialised.
type Store struct {
	mu    *sync.Mutex
	root  **state
	bound *state // non-nil when the store is the handle of a running unit
}

// NewStore creates an empty in-memory ledger.
func NewStore() *Store {
	st := newState()
	return &Store{mu: &sync.Mutex{}, root: &st}
}

var _ portsrepo.LedgerStore = (*Store)(nil)

// Close is a no-op; it lets the store stand in wherever a backend is closed on shutdown.
func (s *Store) Close() error {
	return nil
}

// view runs fn against the current state, taking the lock unless already inside a unit.
func (s *Store) view(fn func(st *state) error) error {
	if s.bound != nil {
		return fn(s.bound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(*s.root)
}

func (s *Store) RunAtomic(ctx context.Context, fn portsrepo.AtomicFunc) error {
	if s.bound != nil {
		return fn(ctx, s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := (*s.root).clone()
	unit := &Store{mu: s.mu, root: s.root, bound: work}
	if err := fn(ctx, unit); err != nil {
		return err
	}
	*s.root = work
	return nil
}

func (s *Store) FindEnvelopeByName(ctx context.Context, name string) (*domain.Envelope, error) {
	var found *domain.Envelope
	err := s.view(func(st *state) error {
		id, ok := st.names[name]
		if !ok {
			return apperrors.ErrNotFound
		}
		env := st.envelopes[id]
		found = &env
		return nil
	})
	return found, err
}

func (s *Store) ListEnvelopes(ctx context.Context) ([]domain.Envelope, error) {
	var envelopes []domain.Envelope
	err := s.view(func(st *state) error {
		envelopes = make([]domain.Envelope, 0, len(st.envelopes))
		for _, env := range st.envelopes {
			envelopes = append(envelopes, env)
		}
		sort.Slice(envelopes, func(i, j int) bool { return envelopes[i].Name < envelopes[j].Name })
		return nil
	})
	return envelopes, err
}

func (s *Store) CreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	err := s.view(func(st *state) error {
		if _, exists := st.names[envelope.Name]; exists {
			return fmt.Errorf("envelope %q: %w", envelope.Name, apperrors.ErrDuplicate)
		}
		st.envelopes[envelope.EnvelopeID] = envelope
		st.names[envelope.Name] = envelope.EnvelopeID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &envelope, nil
}

func (s *Store) GetOrCreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	var result domain.Envelope
	err := s.view(func(st *state) error {
		if id, exists := st.names[envelope.Name]; exists {
			result = st.envelopes[id]
			return nil
		}
		st.envelopes[envelope.EnvelopeID] = envelope
		st.names[envelope.Name] = envelope.EnvelopeID
		result = envelope
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Store) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	err := s.view(func(st *state) error {
		env, ok := st.envelopes[txn.EnvelopeID]
		if !ok {
			return apperrors.NewStorageError("failed to insert transaction", fmt.Errorf("unknown envelope %s", txn.EnvelopeID))
		}
		txn.EnvelopeName = env.Name
		txn.Timestamp = txn.Timestamp.UTC()
		st.transactions = append(st.transactions, txn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *Store) ListTransactionsByEnvelope(ctx context.Context, envelopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor = &c
	}

	var matched []domain.Transaction
	err := s.view(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.EnvelopeID != envelopeID {
				continue
			}
			if cursor != nil && !cursor.After(txn.Timestamp, txn.TransactionID) {
				continue
			}
			matched = append(matched, txn)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].TransactionID > matched[j].TransactionID
		}
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	page, next := pagination.Page(matched, limit, func(t domain.Transaction) (time.Time, string) {
		return t.Timestamp, t.TransactionID
	})
	if page == nil {
		page = []domain.Transaction{}
	}
	return page, next, nil
}

func (s *Store) SumTransactionsByEnvelope(ctx context.Context, from, to time.Time) ([]domain.EnvelopeBalance, error) {
	balances := []domain.EnvelopeBalance{}
	err := s.view(func(st *state) error {
		sums := make(map[string]decimal.Decimal)
		for _, txn := range st.transactions {
			if txn.Timestamp.Before(from) || !txn.Timestamp.Before(to) {
				continue
			}
			sums[txn.EnvelopeID] = sums[txn.EnvelopeID].Add(txn.Amount)
		}
		for id, sum := range sums {
			env := st.envelopes[id]
			balances = append(balances, domain.EnvelopeBalance{EnvelopeID: id, Name: env.Name, Balance: sum})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Name < balances[j].Name })
	return balances, nil
}

func (s *Store) IsMonthClosed(ctx context.Context, period domain.Period) (bool, error) {
	var closed bool
	err := s.view(func(st *state) error {
		_, closed = st.closed[period]
		return nil
	})
	return closed, err
}

func (s *Store) MarkMonthClosed(ctx context.Context, month domain.ClosedMonth) error {
	return s.view(func(st *state) error {
		if _, exists := st.closed[month.Period]; exists {
			return fmt.Errorf("closed month %s: %w", month.Period, apperrors.ErrDuplicate)
		}
		st.closed[month.Period] = month
		return nil
	})
}
