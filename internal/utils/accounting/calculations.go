package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

// SumAmounts adds up the signed amounts of txns.
func SumAmounts(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	return sum
}

// ValidateTransferBalance checks that the legs of a transfer share one transfer ID
// and cancel out.
func ValidateTransferBalance(legs []domain.Transaction) error {
	if len(legs) != 2 {
		return fmt.Errorf("transfer must have exactly two legs, got %d", len(legs))
	}

	debit, credit := legs[0], legs[1]
	if !debit.IsTransferLeg() || !credit.IsTransferLeg() || *debit.TransferID != *credit.TransferID {
		return fmt.Errorf("transfer legs %s and %s are not linked", debit.TransactionID, credit.TransactionID)
	}
	if !debit.Amount.IsNegative() || !credit.Amount.IsPositive() {
		return fmt.Errorf("transfer must debit one envelope and credit the other: got %s and %s", debit.Amount, credit.Amount)
	}

	if sum := SumAmounts(legs); !sum.IsZero() {
		return fmt.Errorf("transfer legs do not balance to zero: sum is %s", sum.String())
	}
	return nil
}
