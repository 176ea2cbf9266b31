package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/fares-backend-go/internal/models"
)

// RunRepository handles database operations for training runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a pending run
func (r *RunRepository) Create(run *models.TrainingRun) error {
	_, err := r.db.Exec(`INSERT INTO training_runs (id, trainer, test_ratio, seed, status)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Trainer, run.TestRatio, run.Seed, models.JobStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create training run: %w", err)
	}
	return nil
}

// MarkRunning transitions a run to running
func (r *RunRepository) MarkRunning(id string, startTime int64) error {
	_, err := r.db.Exec(`UPDATE training_runs
		SET status = ?, start_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.JobStatusRunning, startTime, id)
	if err != nil {
		return fmt.Errorf("failed to mark run running: %w", err)
	}
	return nil
}

// Complete stores the held-out scores and finalizes the run
func (r *RunRepository) Complete(run *models.TrainingRun) error {
	_, err := r.db.Exec(`UPDATE training_runs
		SET status = ?, train_rows = ?, test_rows = ?,
		    mse = ?, rmse = ?, mae = ?, r2 = ?,
		    end_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		models.JobStatusCompleted, run.TrainRows, run.TestRows,
		run.MSE, run.RMSE, run.MAE, run.R2,
		run.EndTime, run.ID)
	if err != nil {
		return fmt.Errorf("failed to complete training run: %w", err)
	}
	return nil
}

// MarkFailed finalizes a failed run with its error message
func (r *RunRepository) MarkFailed(id string, endTime int64, message string) error {
	_, err := r.db.Exec(`UPDATE training_runs
		SET status = ?, end_time = ?, error_message = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.JobStatusFailed, endTime, message, id)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetByID retrieves a single run, or nil when absent
func (r *RunRepository) GetByID(id string) (*models.TrainingRun, error) {
	row := r.db.QueryRow(selectRuns+" WHERE id = ?", id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get training run: %w", err)
	}
	return run, nil
}

// List retrieves runs filtered by status, newest first
func (r *RunRepository) List(filter models.RunFilter) ([]models.TrainingRun, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM training_runs"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count training runs: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(selectRuns+whereClause+" ORDER BY created_at DESC LIMIT ? OFFSET ?", args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list training runs: %w", err)
	}
	defer rows.Close()

	var runs []models.TrainingRun
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan training run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, total, rows.Err()
}

const selectRuns = `SELECT id, trainer, test_ratio, seed, status,
	train_rows, test_rows, mse, rmse, mae, r2,
	COALESCE(start_time, 0), COALESCE(end_time, 0), COALESCE(error_message, ''),
	created_at, updated_at
	FROM training_runs`

func scanRun(scan func(...interface{}) error) (*models.TrainingRun, error) {
	var run models.TrainingRun
	err := scan(&run.ID, &run.Trainer, &run.TestRatio, &run.Seed, &run.Status,
		&run.TrainRows, &run.TestRows, &run.MSE, &run.RMSE, &run.MAE, &run.R2,
		&run.StartTime, &run.EndTime, &run.ErrorMessage,
		&run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
