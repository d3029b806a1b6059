package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

// ReportParams defines the inclusive date range of a balance report.
type ReportParams struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}

// BalanceResponse is one envelope line of a report.
type BalanceResponse struct {
	Envelope string          `json:"envelope"`
	Balance  decimal.Decimal `json:"balance"`
}

// ReportResponse lists per-envelope balances ordered by envelope name.
type ReportResponse struct {
	From     string            `json:"from"` // YYYY-MM-DD
	To       string            `json:"to"`   // YYYY-MM-DD
	Balances []BalanceResponse `json:"balances"`
	Total    decimal.Decimal   `json:"total"`
}

// MonthStatusResponse reports whether a month has been closed.
type MonthStatusResponse struct {
	Period string `json:"period"` // YYYY-MM
	Closed bool   `json:"closed"`
}

// ToReportResponse converts a domain.BalanceReport to ReportResponse DTO.
func ToReportResponse(r *domain.BalanceReport) ReportResponse {
	resp := ReportResponse{
		From:     r.From.Format(time.DateOnly),
		To:       r.To.Format(time.DateOnly),
		Balances: make([]BalanceResponse, len(r.Balances)),
		Total:    r.Total(),
	}
	for i, b := range r.Balances {
		resp.Balances[i] = BalanceResponse{Envelope: b.Name, Balance: b.Balance}
	}
	return resp
}
