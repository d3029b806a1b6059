package repositories

import (
	"context"
)

// AtomicFunc is a unit of work. The store it receives is bound to the running
// transaction; writes made through any other handle are not part of the unit.
type AtomicFunc func(ctx context.Context, store LedgerStore) error

// UnitOfWork runs a group of gateway calls all-or-nothing.
type UnitOfWork interface {
	// RunAtomic commits when fn returns nil and rolls back on any error, which is
	// returned unchanged. Calling RunAtomic on a store already bound to a unit joins it.
	RunAtomic(ctx context.Context, fn AtomicFunc) error
}
