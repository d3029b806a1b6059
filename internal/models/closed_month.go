package models

import "time"

// ClosedMonth is the storage shape of a closed_months row. (year, month) is the primary key.
type ClosedMonth struct {
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	ClosedAt time.Time `json:"closedAt"`
}
