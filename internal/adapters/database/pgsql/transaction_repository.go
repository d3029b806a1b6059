package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
	"github.com/SscSPs/budgetwise/internal/utils/pagination"
)

// InsertTransaction persists a transaction row.
func (s *LedgerStore) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	_, err := s.db.Exec(ctx, `
		INSERT INTO transactions (transaction_id, envelope_id, amount, kind, note, occurred_at, transfer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.TransactionID, m.EnvelopeID, m.Amount, m.Kind, m.Note, m.OccurredAt, m.TransferID, m.CreatedAt,
	)
	if err != nil {
		return nil, storageError(err, "failed to insert transaction %s", txn.TransactionID)
	}
	created := mapping.ToDomainTransaction(m)
	return &created, nil
}

// ListTransactionsByEnvelope retrieves a page of an envelope's transactions, newest first.
// It returns the transactions, a token for the next page, and an error.
func (s *LedgerStore) ListTransactionsByEnvelope(ctx context.Context, envelopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT t.transaction_id, t.envelope_id, e.name, t.amount, t.kind, t.note, t.occurred_at, t.transfer_id, t.created_at
		FROM transactions t
		JOIN envelopes e ON e.envelope_id = t.envelope_id
		WHERE t.envelope_id = $1`
	orderByClause := ` ORDER BY t.occurred_at DESC, t.transaction_id COLLATE "C" DESC`
	args := []any{envelopeID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		baseQuery += ` AND (t.occurred_at < $2 OR (t.occurred_at = $2 AND t.transaction_id COLLATE "C" < $3))`
		args = append(args, cursor.Timestamp, cursor.TransactionID)
	}
	args = append(args, fetchLimit)
	query := baseQuery + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, storageError(err, "failed to query transactions for envelope %s", envelopeID)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.EnvelopeID,
			&m.EnvelopeName,
			&m.Amount,
			&m.Kind,
			&m.Note,
			&m.OccurredAt,
			&m.TransferID,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, storageError(err, "failed to scan transaction row for envelope %s", envelopeID)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, storageError(err, "error iterating transaction rows for envelope %s", envelopeID)
	}

	page, next := pagination.Page(results, limit, func(m models.Transaction) (time.Time, string) {
		return m.OccurredAt, m.TransactionID
	})
	return mapping.ToDomainTransactionSlice(page), next, nil
}

// SumTransactionsByEnvelope sums amounts per envelope for occurred_at in [from, to).
func (s *LedgerStore) SumTransactionsByEnvelope(ctx context.Context, from, to time.Time) ([]domain.EnvelopeBalance, error) {
	query := `
		SELECT e.envelope_id, e.name, SUM(t.amount) AS balance
		FROM transactions t
		JOIN envelopes e ON e.envelope_id = t.envelope_id
		WHERE t.occurred_at >= $1 AND t.occurred_at < $2
		GROUP BY e.envelope_id, e.name
		ORDER BY e.name COLLATE "C";`

	rows, err := s.db.Query(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, storageError(err, "error querying envelope balances")
	}
	defer rows.Close()

	result := []domain.EnvelopeBalance{}
	for rows.Next() {
		var row domain.EnvelopeBalance
		if err := rows.Scan(&row.EnvelopeID, &row.Name, &row.Balance); err != nil {
			return nil, storageError(err, "error scanning envelope balance row")
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating envelope balance rows")
	}
	return result, nil
}
