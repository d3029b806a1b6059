package pgsql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
)

// LedgerStoreIntegrationSuite runs against a live PostgreSQL named by PGSQL_TEST_URL.
type LedgerStoreIntegrationSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *LedgerStore
	ctx   context.Context
}

func TestLedgerStoreIntegration(t *testing.T) {
	if os.Getenv("PGSQL_TEST_URL") == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	suite.Run(t, new(LedgerStoreIntegrationSuite))
}

func (s *LedgerStoreIntegrationSuite) SetupSuite() {
	url := os.Getenv("PGSQL_TEST_URL")
	s.ctx = context.Background()

	_, err := RunMigrations(url)
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(s.ctx, url)
	s.Require().NoError(err)
	s.store = NewLedgerStore(s.pool)
}

func (s *LedgerStoreIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *LedgerStoreIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE transactions, closed_months, envelopes;`)
	s.Require().NoError(err)
}

func (s *LedgerStoreIntegrationSuite) envelope(name string) *domain.Envelope {
	env, err := s.store.GetOrCreateEnvelope(s.ctx, domain.Envelope{EnvelopeID: uuid.NewString(), Name: name, CreatedAt: time.Now()})
	s.Require().NoError(err)
	return env
}

func (s *LedgerStoreIntegrationSuite) TestSumIsExactAndOrdered() {
	coffee := s.envelope("coffee")
	beans := s.envelope("Beans")
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		_, err := s.store.InsertTransaction(s.ctx, domain.Transaction{
			TransactionID: uuid.NewString(), EnvelopeID: coffee.EnvelopeID,
			Amount: decimal.RequireFromString("0.10"), Kind: domain.Income, Timestamp: at, CreatedAt: at,
		})
		s.Require().NoError(err)
	}
	_, err := s.store.InsertTransaction(s.ctx, domain.Transaction{
		TransactionID: uuid.NewString(), EnvelopeID: beans.EnvelopeID,
		Amount: decimal.RequireFromString("-3"), Kind: domain.Expense, Timestamp: at, CreatedAt: at,
	})
	s.Require().NoError(err)

	balances, err := s.store.SumTransactionsByEnvelope(s.ctx, at, at.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().Len(balances, 2)
	s.Equal("Beans", balances[0].Name, "byte order puts upper case first")
	s.True(balances[1].Balance.Equal(decimal.NewFromInt(1)))
}

func (s *LedgerStoreIntegrationSuite) TestAmountsKeepFullPrecision() {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	amounts := map[string]string{
		"Dust": "0.0000000001",
		"Huge": "1000000000000000.01",
	}

	for name, amount := range amounts {
		env := s.envelope(name)
		_, err := s.store.InsertTransaction(s.ctx, domain.Transaction{
			TransactionID: uuid.NewString(), EnvelopeID: env.EnvelopeID,
			Amount: decimal.RequireFromString(amount), Kind: domain.Income, Timestamp: at, CreatedAt: at,
		})
		s.Require().NoError(err)

		txns, _, err := s.store.ListTransactionsByEnvelope(s.ctx, env.EnvelopeID, 10, nil)
		s.Require().NoError(err)
		s.Require().Len(txns, 1)
		s.True(txns[0].Amount.Equal(decimal.RequireFromString(amount)), "stored %s, want %s", txns[0].Amount, amount)
	}

	balances, err := s.store.SumTransactionsByEnvelope(s.ctx, at, at.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().Len(balances, 2)
	s.Equal("Dust", balances[0].Name)
	s.True(balances[0].Balance.Equal(decimal.RequireFromString("0.0000000001")))
	s.True(balances[1].Balance.Equal(decimal.RequireFromString("1000000000000000.01")))

	budgeted, err := s.store.CreateEnvelope(s.ctx, domain.Envelope{
		EnvelopeID: uuid.NewString(), Name: "Budgeted",
		Budget: decimal.RequireFromString("123456789012345.123456789"), CreatedAt: at,
	})
	s.Require().NoError(err)
	found, err := s.store.FindEnvelopeByName(s.ctx, budgeted.Name)
	s.Require().NoError(err)
	s.True(found.Budget.Equal(decimal.RequireFromString("123456789012345.123456789")))
}

func (s *LedgerStoreIntegrationSuite) TestRunAtomicRollsBackAndDetectsDuplicateClose() {
	march := domain.Period{Year: 2024, Month: 3}
	err := s.store.RunAtomic(s.ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		s.envelopeVia(ctx, store, "Rolled back")
		s.Require().NoError(store.MarkMonthClosed(ctx, domain.ClosedMonth{Period: march, ClosedAt: time.Now()}))
		return store.MarkMonthClosed(ctx, domain.ClosedMonth{Period: march, ClosedAt: time.Now()})
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.store.FindEnvelopeByName(s.ctx, "Rolled back")
	s.ErrorIs(err, apperrors.ErrNotFound)
	closed, err := s.store.IsMonthClosed(s.ctx, march)
	s.Require().NoError(err)
	s.False(closed)
}

func (s *LedgerStoreIntegrationSuite) envelopeVia(ctx context.Context, store portsrepo.LedgerStore, name string) {
	_, err := store.GetOrCreateEnvelope(ctx, domain.Envelope{EnvelopeID: uuid.NewString(), Name: name, CreatedAt: time.Now()})
	s.Require().NoError(err)
}

func (s *LedgerStoreIntegrationSuite) TestConcurrentGetOrCreate() {
	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			env, err := s.store.GetOrCreateEnvelope(s.ctx, domain.Envelope{EnvelopeID: uuid.NewString(), Name: "Shared", CreatedAt: time.Now()})
			s.NoError(err)
			if env != nil {
				ids[i] = env.EnvelopeID
			}
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		s.Equal(ids[0], id)
	}
}
