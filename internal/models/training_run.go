package models

import "time"

// TrainingRun represents one fit/score cycle of a fare model over the
// persisted feature rows.
type TrainingRun struct {
	ID string `json:"id" db:"id"` // UUID

	// Input parameters
	Trainer   string  `json:"trainer" db:"trainer"`       // trainer name, e.g. "mean_baseline"
	TestRatio float64 `json:"test_ratio" db:"test_ratio"` // held-out fraction, 0-1
	Seed      int64   `json:"seed" db:"seed"`             // split shuffle seed

	// Status
	Status string `json:"status" db:"status"` // pending, running, completed, failed

	// Dataset accounting
	TrainRows int64 `json:"train_rows" db:"train_rows"`
	TestRows  int64 `json:"test_rows" db:"test_rows"`

	// Held-out scores
	MSE  float64 `json:"mse" db:"mse"`
	RMSE float64 `json:"rmse" db:"rmse"`
	MAE  float64 `json:"mae" db:"mae"`
	R2   float64 `json:"r2" db:"r2"`

	// Execution info
	StartTime    int64  `json:"start_time,omitempty" db:"start_time"` // Unix timestamp
	EndTime      int64  `json:"end_time,omitempty" db:"end_time"`     // Unix timestamp
	ErrorMessage string `json:"error_message,omitempty" db:"error_message"`

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
