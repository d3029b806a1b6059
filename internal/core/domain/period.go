package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/budgetwise/internal/apperrors"
)

// storagePrecision is the finest timestamp resolution every backend keeps.
const storagePrecision = time.Microsecond

// Period identifies a calendar month. All instants derived from it are UTC.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod validates year and month and returns the Period.
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the month containing t (in UTC).
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// ParsePeriod parses "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: expected YYYY-MM, got %q", apperrors.ErrInvalidPeriod, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("%w: expected YYYY-MM, got %q", apperrors.ErrInvalidPeriod, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("%w: expected YYYY-MM, got %q", apperrors.ErrInvalidPeriod, s)
	}
	return NewPeriod(year, month)
}

// Validate checks for a 4-digit year and a month in 1..12.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month must be between 01 and 12, got %02d", apperrors.ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1000 || p.Year > 9999 {
		return fmt.Errorf("%w: enter a valid 4 digit year, got %d", apperrors.ErrInvalidPeriod, p.Year)
	}
	return nil
}

// FirstDay is midnight on the first day of the month.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is midnight on the last calendar day of the month.
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 0, p.DaysInMonth()-1)
}

// DaysInMonth returns the true number of days, leap years included.
func (p Period) DaysInMonth() int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start is the first instant of the month.
func (p Period) Start() time.Time {
	return p.FirstDay()
}

// End is the first instant of the following month (exclusive bound).
func (p Period) End() time.Time {
	return p.Next().Start()
}

// LastInstant is the latest storable instant inside the month.
func (p Period) LastInstant() time.Time {
	return p.End().Add(-storagePrecision)
}

// Next returns the following month, rolling December into January of the next year.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// ClosedMonth records that a period has been finalized. A period closes at most once.
type ClosedMonth struct {
	Period
	ClosedAt time.Time `json:"closedAt"`
}
