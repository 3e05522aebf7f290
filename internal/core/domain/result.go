package domain

import "time"

// Result represents a single team's result in one event category.
type Result struct {
	ResultID      int64     `json:"resultID"` // Store-assigned, 0 until persisted
	EventID       int64     `json:"eventID"`
	Category      string    `json:"category"`
	Team          string    `json:"team"`
	PenaltyPoints int       `json:"penaltyPoints"`
	Deleted       bool      `json:"deleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsDeleted reports whether the result has been soft-deleted.
func (r *Result) IsDeleted() bool {
	return r.Deleted
}

// HasPenaltyPoints reports whether the team collected any penalty points.
func (r *Result) HasPenaltyPoints() bool {
	return r.PenaltyPoints > 0
}

// CategoryResults holds the results for one category. Groups keep the
// first-seen category order of the underlying fetch, and results within a
// group keep the fetch order (newest first).
type CategoryResults struct {
	Category string
	Results  []Result
}
