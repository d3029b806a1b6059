package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
	"github.com/SscSPs/budgetwise/internal/utils/pagination"
)

func (s *LedgerStore) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, envelope_id, amount, kind, note, occurred_at, transfer_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		m.TransactionID, m.EnvelopeID, m.Amount.String(), m.Kind, m.Note,
		formatTime(m.OccurredAt), m.TransferID, formatTime(m.CreatedAt),
	)
	if err != nil {
		return nil, storageError(err, "failed to insert transaction %s", txn.TransactionID)
	}
	created := mapping.ToDomainTransaction(m)
	return &created, nil
}

func scanTransaction(rows *sql.Rows) (models.Transaction, error) {
	var (
		m          models.Transaction
		amount     string
		occurredAt string
		createdAt  string
		transferID sql.NullString
	)
	if err := rows.Scan(&m.TransactionID, &m.EnvelopeID, &m.EnvelopeName, &amount, &m.Kind, &m.Note, &occurredAt, &transferID, &createdAt); err != nil {
		return m, err
	}

	var err error
	if m.Amount, err = decimal.NewFromString(amount); err != nil {
		return m, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if m.OccurredAt, err = parseTime(occurredAt); err != nil {
		return m, fmt.Errorf("parse occurred_at %q: %w", occurredAt, err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if transferID.Valid {
		m.TransferID = &transferID.String
	}
	return m, nil
}

func (s *LedgerStore) ListTransactionsByEnvelope(ctx context.Context, envelopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT t.transaction_id, t.envelope_id, e.name, t.amount, t.kind, t.note, t.occurred_at, t.transfer_id, t.created_at
		FROM transactions t
		JOIN envelopes e ON e.envelope_id = t.envelope_id
		WHERE t.envelope_id = ?`
	args := []any{envelopeID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		ts := formatTime(cursor.Timestamp)
		query += ` AND (t.occurred_at < ? OR (t.occurred_at = ? AND t.transaction_id < ?))`
		args = append(args, ts, ts, cursor.TransactionID)
	}
	query += ` ORDER BY t.occurred_at DESC, t.transaction_id DESC LIMIT ?;`
	args = append(args, fetchLimit)

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, storageError(err, "failed to query transactions for envelope %s", envelopeID)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
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

// SumTransactionsByEnvelope streams the window's rows ordered by envelope name and
// folds consecutive rows of one envelope into a decimal sum.
func (s *LedgerStore) SumTransactionsByEnvelope(ctx context.Context, from, to time.Time) ([]domain.EnvelopeBalance, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT e.envelope_id, e.name, t.amount
		FROM transactions t
		JOIN envelopes e ON e.envelope_id = t.envelope_id
		WHERE t.occurred_at >= ? AND t.occurred_at < ?
		ORDER BY e.name, e.envelope_id;`,
		formatTime(from), formatTime(to),
	)
	if err != nil {
		return nil, storageError(err, "error querying envelope balances")
	}
	defer rows.Close()

	result := []domain.EnvelopeBalance{}
	for rows.Next() {
		var envelopeID, name, amount string
		if err := rows.Scan(&envelopeID, &name, &amount); err != nil {
			return nil, storageError(err, "error scanning envelope balance row")
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, storageError(err, "invalid amount %q for envelope %s", amount, envelopeID)
		}

		if n := len(result); n > 0 && result[n-1].EnvelopeID == envelopeID {
			result[n-1].Balance = result[n-1].Balance.Add(value)
			continue
		}
		result = append(result, domain.EnvelopeBalance{EnvelopeID: envelopeID, Name: name, Balance: value})
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating envelope balance rows")
	}
	return result, nil
}
