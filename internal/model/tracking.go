package model

import "time"

// Run statuses
const (
	RunPending     = "pending"
	RunLoading     = "loading"
	RunAggregating = "aggregating"
	RunCompleted   = "completed"
	RunFailed      = "failed"
)

// RunSummary is a row of the run history
type RunSummary struct {
	ID        string    `json:"id"`
	City      string    `json:"city"`
	Month     string    `json:"month"`
	Day       string    `json:"day"`
	Status    string    `json:"status"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunDetail is a run with its stored report, if any
type RunDetail struct {
	RunSummary
	Report *Report `json:"report,omitempty"`
}

// RunError is an error recorded against a run
type RunError struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
