package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestLedgerErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		parent error
	}{
		{"invalid amount", apperrors.ErrInvalidAmount, apperrors.ErrValidation},
		{"invalid range", apperrors.ErrInvalidDateRange, apperrors.ErrValidation},
		{"invalid period", apperrors.ErrInvalidPeriod, apperrors.ErrValidation},
		{"invalid envelope name", apperrors.ErrInvalidEnvelopeName, apperrors.ErrValidation},
		{"already closed", apperrors.ErrMonthAlreadyClosed, apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("close 2024-05: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.parent)
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := apperrors.NewStorageError("failed to insert transaction", cause)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 500, err.Code)
	assert.Equal(t, "failed to insert transaction: connection reset by peer", err.Error())

	var appErr *apperrors.AppError
	assert.True(t, errors.As(fmt.Errorf("add: %w", err), &appErr))
}

func TestAppErrorWithoutKind(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid nextToken", nil)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
	assert.Equal(t, "invalid nextToken", err.Error())
}
