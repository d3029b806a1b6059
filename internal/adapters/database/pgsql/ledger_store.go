package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
)

// LedgerStore is the PostgreSQL implementation of portsrepo.LedgerStore.
type LedgerStore struct {
	BaseRepository
	db   querier
	inTx bool
}

// NewLedgerStore creates a gateway backed by the given pool.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

var _ portsrepo.LedgerStore = (*LedgerStore)(nil)

// RunAtomic executes fn inside a single database transaction. Nested calls join
// the outer transaction.
func (s *LedgerStore) RunAtomic(ctx context.Context, fn portsrepo.AtomicFunc) error {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Rollback(ctx, tx)
	}()

	txStore := &LedgerStore{BaseRepository: s.BaseRepository, db: tx, inTx: true}
	if err := fn(ctx, txStore); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// NewRepositoryProvider wires the PostgreSQL gateway for the service container.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Ledger: NewLedgerStore(pool),
		Closer: poolCloser{pool},
	}
}

type poolCloser struct {
	pool *pgxpool.Pool
}

func (c poolCloser) Close() error {
	c.pool.Close()
	return nil
}
