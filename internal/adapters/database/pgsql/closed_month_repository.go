package pgsql

import (
	"context"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
)

// IsMonthClosed reports whether a closed_months row exists for the period.
func (s *LedgerStore) IsMonthClosed(ctx context.Context, period domain.Period) (bool, error) {
	var closed bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM closed_months WHERE year = $1 AND month = $2);`,
		period.Year, period.Month,
	).Scan(&closed)
	if err != nil {
		return false, storageError(err, "failed to check closed month %s", period)
	}
	return closed, nil
}

// MarkMonthClosed inserts the marker; the (year, month) primary key rejects a second close.
func (s *LedgerStore) MarkMonthClosed(ctx context.Context, month domain.ClosedMonth) error {
	m := mapping.ToModelClosedMonth(month)
	_, err := s.db.Exec(ctx,
		`INSERT INTO closed_months (year, month, closed_at) VALUES ($1, $2, $3);`,
		m.Year, m.Month, m.ClosedAt,
	)
	if err != nil {
		return storageError(err, "failed to mark month %s closed", month.Period)
	}
	return nil
}
