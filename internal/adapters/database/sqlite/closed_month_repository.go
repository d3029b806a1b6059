package sqlite

import (
	"context"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/utils/mapping"
)

func (s *LedgerStore) IsMonthClosed(ctx context.Context, period domain.Period) (bool, error) {
	var closed bool
	err := s.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM closed_months WHERE year = ? AND month = ?);`,
		period.Year, period.Month,
	).Scan(&closed)
	if err != nil {
		return false, storageError(err, "failed to check closed month %s", period)
	}
	return closed, nil
}

func (s *LedgerStore) MarkMonthClosed(ctx context.Context, month domain.ClosedMonth) error {
	m := mapping.ToModelClosedMonth(month)
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO closed_months (year, month, closed_at) VALUES (?, ?, ?);`,
		m.Year, m.Month, formatTime(m.ClosedAt),
	)
	if err != nil {
		return storageError(err, "failed to mark month %s closed", month.Period)
	}
	return nil
}
