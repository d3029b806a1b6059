package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/budgetwise/internal/adapters/database/memory"
	"github.com/SscSPs/budgetwise/internal/apperrors"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	"github.com/SscSPs/budgetwise/internal/core/services"
	"github.com/SscSPs/budgetwise/internal/platform/logging"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggingLedgerService_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Format: "json", Output: &buf})
	svc := services.NewLoggingLedgerService(services.NewLedgerService(memory.NewStore()), logger)
	ctx := context.Background()

	_, err := svc.AddTransaction(ctx, "Groceries", decimal.NewFromInt(-5), "", nil)
	require.NoError(t, err)

	_, err = svc.Move(ctx, "Groceries", "Leisure", decimal.Zero)
	require.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Transaction added", entries[0]["msg"])
	assert.Equal(t, "Groceries", entries[0]["envelope"])
	assert.Equal(t, "expense", entries[0]["kind"])

	assert.Equal(t, "WARN", entries[1]["level"], "validation failures are not server errors")
	assert.Equal(t, "Failed to move funds", entries[1]["msg"])
}

func TestLoggingLedgerService_PrefersContextLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	svc := services.NewLoggingLedgerService(
		services.NewLedgerService(memory.NewStore()),
		logging.New(logging.Config{Output: &fallback}),
	)
	ctx := logging.WithLogger(context.Background(), logging.New(logging.Config{Output: &scoped}).With("request_id", "req-1"))

	require.NoError(t, svc.CloseMonth(ctx, 2024, 3))

	assert.Empty(t, fallback.String())
	entries := decodeLines(t, &scoped)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "Month closed", entries[0]["msg"])
}

func TestLoggingLedgerService_StorageFailureIsError(t *testing.T) {
	var buf bytes.Buffer
	store := new(MockLedgerStore)
	store.On("RunAtomic", context.Background()).Return(apperrors.NewStorageError("failed to begin transaction", assert.AnError)).Once()

	svc := services.NewLoggingLedgerService(services.NewLedgerService(store), logging.New(logging.Config{Output: &buf}))
	err := svc.CloseMonth(context.Background(), 2024, 3)
	require.ErrorIs(t, err, apperrors.ErrStorage)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	store.AssertExpectations(t)
}

func TestNewServiceContainer(t *testing.T) {
	container := services.NewServiceContainer(&portsrepo.RepositoryProvider{Ledger: memory.NewStore()}, logging.New(logging.Config{Output: &bytes.Buffer{}}))
	require.NotNil(t, container.Ledger)

	envelopes, err := container.Ledger.ListEnvelopes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, envelopes)
}
