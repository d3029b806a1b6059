package domain

import (
	"strings"
	"testing"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestKindForAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   TransactionKind
	}{
		{"3000.00", Income},
		{"0.01", Income},
		{"0", Expense},
		{"0.00", Expense},
		{"-0.01", Expense},
		{"-150.00", Expense},
		{"1000000000000.12345678", Income},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestTransaction_IsTransferLeg(t *testing.T) {
	empty := ""
	id := "c0ffee00-0000-0000-0000-000000000000"

	assert.False(t, Transaction{}.IsTransferLeg())
	assert.False(t, Transaction{TransferID: &empty}.IsTransferLeg())
	assert.True(t, Transaction{TransferID: &id}.IsTransferLeg())
}

func TestValidateEnvelopeName(t *testing.T) {
	assert.NoError(t, ValidateEnvelopeName("Groceries"))
	assert.NoError(t, ValidateEnvelopeName(strings.Repeat("é", MaxEnvelopeNameLength)))

	assert.ErrorIs(t, ValidateEnvelopeName(""), apperrors.ErrInvalidEnvelopeName)
	// Only the empty string is empty; names are matched exactly, spaces included.
	assert.NoError(t, ValidateEnvelopeName("   "))
	assert.ErrorIs(t, ValidateEnvelopeName(strings.Repeat("x", MaxEnvelopeNameLength+1)), apperrors.ErrValidation)
}

func TestBalanceReport_Accessors(t *testing.T) {
	r := BalanceReport{Balances: []EnvelopeBalance{
		{Name: "Groceries", Balance: decimal.RequireFromString("-150.00")},
		{Name: "Leisure", Balance: decimal.RequireFromString("-100.00")},
		{Name: "Salary", Balance: decimal.RequireFromString("3000.00")},
	}}

	assert.Equal(t, []string{"Groceries", "Leisure", "Salary"}, r.Names())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Total().Equal(decimal.RequireFromString("2750")))

	b, ok := r.Balance("Leisure")
	assert.True(t, ok)
	assert.True(t, b.Equal(decimal.NewFromInt(-100)))

	_, ok = r.Balance("leisure")
	assert.False(t, ok)

	m := r.Map()
	assert.Len(t, m, 3)
	assert.True(t, m["Salary"].Equal(decimal.NewFromInt(3000)))
}
