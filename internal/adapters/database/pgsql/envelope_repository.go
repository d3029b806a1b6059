package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
)

const selectEnvelopeColumns = `SELECT envelope_id, name, budget, created_at FROM envelopes`

func scanEnvelope(row pgx.Row) (models.Envelope, error) {
	var m models.Envelope
	err := row.Scan(&m.EnvelopeID, &m.Name, &m.Budget, &m.CreatedAt)
	return m, err
}

// FindEnvelopeByName retrieves an envelope by exact name.
func (s *LedgerStore) FindEnvelopeByName(ctx context.Context, name string) (*domain.Envelope, error) {
	m, err := scanEnvelope(s.db.QueryRow(ctx, selectEnvelopeColumns+` WHERE name = $1;`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageError(err, "failed to find envelope %q", name)
	}
	env := mapping.ToDomainEnvelope(m)
	return &env, nil
}

// ListEnvelopes returns all envelopes ordered by name (byte order).
func (s *LedgerStore) ListEnvelopes(ctx context.Context) ([]domain.Envelope, error) {
	rows, err := s.db.Query(ctx, selectEnvelopeColumns+` ORDER BY name COLLATE "C";`)
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

// CreateEnvelope inserts a new envelope.
func (s *LedgerStore) CreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	m := mapping.ToModelEnvelope(envelope)
	_, err := s.db.Exec(ctx,
		`INSERT INTO envelopes (envelope_id, name, budget, created_at) VALUES ($1, $2, $3, $4);`,
		m.EnvelopeID, m.Name, m.Budget, m.CreatedAt,
	)
	if err != nil {
		return nil, storageError(err, "failed to create envelope %q", envelope.Name)
	}
	return &envelope, nil
}

// GetOrCreateEnvelope inserts the envelope unless its name is taken, then reads back
// the stored row. Concurrent inserts for one name block on the unique index, so every
// caller ends up with the same envelope.
func (s *LedgerStore) GetOrCreateEnvelope(ctx context.Context, envelope domain.Envelope) (*domain.Envelope, error) {
	m := mapping.ToModelEnvelope(envelope)
	_, err := s.db.Exec(ctx,
		`INSERT INTO envelopes (envelope_id, name, budget, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING;`,
		m.EnvelopeID, m.Name, m.Budget, m.CreatedAt,
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
