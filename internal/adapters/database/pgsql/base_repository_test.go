package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/budgetwise/internal/apperrors"
)

func TestStorageError(t *testing.T) {
	dup := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "closed_months_pkey"})
	err := storageError(dup, "failed to mark month %s closed", "2024-03")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
	assert.Contains(t, err.Error(), "2024-03")

	fk := &pgconn.PgError{Code: "23503"}
	err = storageError(fk, "failed to insert transaction %s", "t-1")
	assert.ErrorIs(t, err, apperrors.ErrStorage)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23503", pgErr.Code)
}
