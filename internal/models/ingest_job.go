package models

import "time"

// IngestJob represents an asynchronous ingestion run: one source file read
// in partitions, each partition pushed through the cleaning pipeline.
type IngestJob struct {
	ID string `json:"id" db:"id"` // UUID

	// Input
	Source        string `json:"source" db:"source"`
	PartitionSize int    `json:"partition_size" db:"partition_size"`

	// Status
	Status          string `json:"status" db:"status"` // pending, running, completed, failed
	ProgressPercent int    `json:"progress_percent" db:"progress_percent"`

	// Row accounting
	RowsRead    int64 `json:"rows_read" db:"rows_read"`
	RowsKept    int64 `json:"rows_kept" db:"rows_kept"`
	RowsDropped int64 `json:"rows_dropped" db:"rows_dropped"`
	Partitions  int   `json:"partitions" db:"partitions"`

	// Execution info
	StartTime int64 `json:"start_time,omitempty" db:"start_time"` // Unix timestamp
	EndTime   int64 `json:"end_time,omitempty" db:"end_time"`     // Unix timestamp

	ErrorMessage string `json:"error_message,omitempty" db:"error_message"`

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobStatus constants
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)
