package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

func leg(id, envelopeID, amount string, transferID *string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		EnvelopeID:    envelopeID,
		Amount:        decimal.RequireFromString(amount),
		TransferID:    transferID,
	}
}

func TestSumAmounts(t *testing.T) {
	txns := make([]domain.Transaction, 10)
	for i := range txns {
		txns[i] = leg("t", "e", "0.10", nil)
	}
	assert.True(t, SumAmounts(txns).Equal(decimal.RequireFromString("1.00")))
	assert.True(t, SumAmounts(nil).IsZero())
}

func TestValidateTransferBalance(t *testing.T) {
	id, other := "tr-1", "tr-2"

	assert.NoError(t, ValidateTransferBalance([]domain.Transaction{
		leg("d", "src", "-25.50", &id),
		leg("c", "dst", "25.50", &id),
	}))

	tests := map[string][]domain.Transaction{
		"single leg":         {leg("d", "src", "-1", &id)},
		"unlinked":           {leg("d", "src", "-1", &id), leg("c", "dst", "1", nil)},
		"different transfer": {leg("d", "src", "-1", &id), leg("c", "dst", "1", &other)},
		"unbalanced":         {leg("d", "src", "-1", &id), leg("c", "dst", "2", &id)},
		"wrong direction":    {leg("d", "src", "1", &id), leg("c", "dst", "-1", &id)},
	}
	for name, legs := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateTransferBalance(legs))
		})
	}
}
