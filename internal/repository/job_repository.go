package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/fares-backend-go/internal/models"
)

// JobRepository handles database operations for ingestion jobs
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a pending job
func (r *JobRepository) Create(job *models.IngestJob) error {
	_, err := r.db.Exec(`INSERT INTO ingest_jobs (id, source, partition_size, status)
		VALUES (?, ?, ?, ?)`,
		job.ID, job.Source, job.PartitionSize, models.JobStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create ingest job: %w", err)
	}
	return nil
}

// MarkRunning transitions a job to running and stamps its start time
func (r *JobRepository) MarkRunning(id string, startTime int64) error {
	_, err := r.db.Exec(`UPDATE ingest_jobs
		SET status = ?, start_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.JobStatusRunning, startTime, id)
	if err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}
	return nil
}

// UpdateProgress updates row accounting mid-run
func (r *JobRepository) UpdateProgress(id string, rowsRead, rowsKept, rowsDropped int64, partitions, percent int) error {
	_, err := r.db.Exec(`UPDATE ingest_jobs
		SET rows_read = ?, rows_kept = ?, rows_dropped = ?, partitions = ?,
		    progress_percent = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		rowsRead, rowsKept, rowsDropped, partitions, percent, id)
	if err != nil {
		return fmt.Errorf("failed to update job progress: %w", err)
	}
	return nil
}

// MarkCompleted finalizes a successful job
func (r *JobRepository) MarkCompleted(id string, endTime int64) error {
	_, err := r.db.Exec(`UPDATE ingest_jobs
		SET status = ?, progress_percent = 100, end_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.JobStatusCompleted, endTime, id)
	if err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}
	return nil
}

// MarkFailed finalizes a failed job with its error message
func (r *JobRepository) MarkFailed(id string, endTime int64, message string) error {
	_, err := r.db.Exec(`UPDATE ingest_jobs
		SET status = ?, end_time = ?, error_message = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.JobStatusFailed, endTime, message, id)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

// GetByID retrieves a single job, or nil when absent
func (r *JobRepository) GetByID(id string) (*models.IngestJob, error) {
	row := r.db.QueryRow(`SELECT id, source, partition_size, status, progress_percent,
		rows_read, rows_kept, rows_dropped, partitions,
		COALESCE(start_time, 0), COALESCE(end_time, 0), COALESCE(error_message, ''),
		created_at, updated_at
		FROM ingest_jobs WHERE id = ?`, id)

	var job models.IngestJob
	err := row.Scan(&job.ID, &job.Source, &job.PartitionSize, &job.Status, &job.ProgressPercent,
		&job.RowsRead, &job.RowsKept, &job.RowsDropped, &job.Partitions,
		&job.StartTime, &job.EndTime, &job.ErrorMessage,
		&job.CreatedAt, &job.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingest job: %w", err)
	}
	return &job, nil
}

// List retrieves jobs, newest first
func (r *JobRepository) List(status string, limit int) ([]models.IngestJob, error) {
	var conditions []string
	var args []interface{}

	if status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	rows, err := r.db.Query(`SELECT id, source, partition_size, status, progress_percent,
		rows_read, rows_kept, rows_dropped, partitions,
		COALESCE(start_time, 0), COALESCE(end_time, 0), COALESCE(error_message, ''),
		created_at, updated_at
		FROM ingest_jobs`+whereClause+` ORDER BY created_at DESC LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.IngestJob
	for rows.Next() {
		var job models.IngestJob
		if err := rows.Scan(&job.ID, &job.Source, &job.PartitionSize, &job.Status, &job.ProgressPercent,
			&job.RowsRead, &job.RowsKept, &job.RowsDropped, &job.Partitions,
			&job.StartTime, &job.EndTime, &job.ErrorMessage,
			&job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingest job: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}
