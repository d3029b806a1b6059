package mapping

import (
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
)

// ToModelClosedMonth converts a domain ClosedMonth to a model ClosedMonth
func ToModelClosedMonth(d domain.ClosedMonth) models.ClosedMonth {
	return models.ClosedMonth{
		Year:     d.Year,
		Month:    d.Month,
		ClosedAt: d.ClosedAt.UTC(),
	}
}
