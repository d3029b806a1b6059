package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/budgetwise/internal/core/services"
	"github.com/SscSPs/budgetwise/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_SQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Backend: config.BackendSQLite, SQLiteDBPath: filepath.Join(t.TempDir(), "budget.db")}

	repos, err := Open(ctx, cfg, discardLogger())
	require.NoError(t, err)
	_, err = services.NewLedgerService(repos.Ledger).AddTransaction(ctx, "Groceries", decimal.NewFromInt(-3), "", nil)
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	repos, err = Open(ctx, cfg, discardLogger())
	require.NoError(t, err)
	defer repos.Close()

	envelopes, err := repos.Ledger.ListEnvelopes(ctx)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)
	assert.Equal(t, "Groceries", envelopes[0].Name)
}

func TestOpen_Memory(t *testing.T) {
	repos, err := Open(context.Background(), &config.Config{Backend: config.BackendMemory}, discardLogger())
	require.NoError(t, err)
	assert.NotNil(t, repos.Ledger)
	assert.NoError(t, repos.Close())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Backend: "csv"}, discardLogger())
	assert.ErrorContains(t, err, "unsupported backend")

	_, err = NewPgxPool(context.Background(), "", true, discardLogger())
	assert.ErrorContains(t, err, "cannot be empty")
}
