package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
)

const selectEnvelopeColumns = `SELECT envelope_id, name, budget, created_at FROM envelopes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnvelope(row rowScanner) (models.Envelope, error) {
	var (
		m         models.Envelope
		budget    string
		createdAt string
	)
	if err := row.Scan(&m.EnvelopeID, &m.Name, &budget, &createdAt); err != nil {
		return m, err
	}

	var err error
	if m.Budget, err = decimal.NewFromString(budget); err != nil {
		return m, fmt.Errorf("parse budget %q: %w", budget, err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return m, nil
}

func (s *LedgerStore) FindEnvelopeByName(ctx context.Context, name string) (*domain.Envelope, error) {
	m, err := scanEnvelope(s.q.QueryRowContext(ctx, selectEnvelopeColumns+` WHERE name = ?;`, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageError(err, "failed to find envelope %q", name)
	}
	env := mapping.ToDomainEnvelope(m)
	return &env, nil
}

func (s *LedgerStore) ListEnvelopes(ctx context.Context) ([]domain.Envelope, error) {
	rows, err := s.q.QueryContext(ctx, selectEnvelopeColumns+` ORDER BY name;`)
	if err != nil {
		return nil, storageError(err, "failed to list envelopes")
	}
	defer rows.Close()

	envelopes := []models.Envelope{}
	for rows.Next() {
		m, err := scanEnvelope(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan envelope row")
		}
		envelopes = append(envelopes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating envelope rows")
	}
	return mapping.ToDomainEnvelopeSlice(envelopes), nil
}

func (s *LedgerStore) CreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	m := mapping.ToModelEnvelope(envelope)
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO envelopes (envelope_id, name, budget, created_at) VALUES (?, ?, ?, ?);`,
		m.EnvelopeID, m.Name, m.Budget.String(), formatTime(m.CreatedAt),
	)
	if err != nil {
		return nil, storageError(err, "failed to create envelope %q", envelope.Name)
	}
	return &envelope, nil
}

func (s *LedgerStore) GetOrCreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	m := mapping.ToModelEnvelope(envelope)
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO envelopes (envelope_id, name, budget, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (name) DO NOTHING;`,
		m.EnvelopeID, m.Name, m.Budget.String(), formatTime(m.CreatedAt),
	)
	if err != nil {
		return nil, storageError(err, "failed to create envelope %q", envelope.Name)
	}

	stored, err := s.FindEnvelopeByName(ctx, envelope.Name)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewStorageError("envelope vanished after insert", err)
	}
	return stored, err
}
