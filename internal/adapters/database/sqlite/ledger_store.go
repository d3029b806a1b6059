package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeLayout is fixed-width UTC so that TEXT comparison orders like time.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LedgerStore is the SQLite implementation of portsrepo.LedgerStore. Amounts are
// stored as decimal strings and summed in Go so no precision is lost.
type LedgerStore struct {
	db   *sql.DB
	q    querier
	inTx bool
}

var _ portsrepo.LedgerStore = (*LedgerStore)(nil)

// Open creates (if needed) and migrates the database at dbPath.
func Open(ctx context.Context, dbPath string) (*LedgerStore, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection serialises writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &LedgerStore{db: db, q: db}, nil
}

func (s *LedgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewRepositoryProvider wires the SQLite gateway for the service container.
func NewRepositoryProvider(store *LedgerStore) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{Ledger: store, Closer: store}
}

// RunAtomic executes fn inside one SQLite transaction. Nested calls join it.
func (s *LedgerStore) RunAtomic(ctx context.Context, fn portsrepo.AtomicFunc) error {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &LedgerStore{db: s.db, q: tx, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Extended result codes disabled.
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}
	return false
}

// storageError classifies a driver error: unique violations become
// apperrors.ErrDuplicate, everything else a storage failure.
func storageError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, msg)
	}
	return apperrors.NewStorageError(msg, err)
}
