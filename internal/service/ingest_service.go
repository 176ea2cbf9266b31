package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jengzang/fares-backend-go/internal/dataset"
	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/pipeline"
	"github.com/jengzang/fares-backend-go/internal/repository"
)

// IngestService orchestrates ingestion jobs: a source is read in partitions,
// each partition runs through the cleaning pipeline independently, and the
// surviving feature rows are persisted. Partition transforms carry no shared
// state, so they fan out across workers.
type IngestService struct {
	jobs   *repository.JobRepository
	trips  *repository.TripRepository
	reader dataset.PartitionReader

	cfg     pipeline.Config
	workers int
}

// NewIngestService creates a new ingest service
func NewIngestService(jobs *repository.JobRepository, trips *repository.TripRepository,
	reader dataset.PartitionReader, cfg pipeline.Config, workers int) *IngestService {
	if workers < 1 {
		workers = 1
	}
	return &IngestService{
		jobs:    jobs,
		trips:   trips,
		reader:  reader,
		cfg:     cfg,
		workers: workers,
	}
}

// StartJob registers a pending job and runs it in the background
func (s *IngestService) StartJob(source string, partitionSize int) (*models.IngestJob, error) {
	if partitionSize <= 0 {
		partitionSize = dataset.DefaultPartitionSize
	}

	job := &models.IngestJob{
		ID:            uuid.NewString(),
		Source:        source,
		PartitionSize: partitionSize,
		Status:        models.JobStatusPending,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}

	go s.run(context.Background(), job)

	return job, nil
}

// GetJob retrieves a job by ID
func (s *IngestService) GetJob(id string) (*models.IngestJob, error) {
	return s.jobs.GetByID(id)
}

// ListJobs retrieves jobs, newest first
func (s *IngestService) ListJobs(status string, limit int) ([]models.IngestJob, error) {
	return s.jobs.List(status, limit)
}

func (s *IngestService) run(ctx context.Context, job *models.IngestJob) {
	if err := s.jobs.MarkRunning(job.ID, time.Now().Unix()); err != nil {
		log.Printf("ingest %s: %v", job.ID, err)
		return
	}

	// Pre-count rows when the reader supports it, so progress has a total
	var totalRows int64
	if counter, ok := s.reader.(dataset.RowCounter); ok {
		if n, err := counter.CountRows(job.Source); err == nil {
			totalRows = n
		}
	}

	var mu sync.Mutex
	var rowsRead, rowsKept, rowsDropped int64
	partitions := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	readErr := s.reader.ReadPartitioned(gctx, job.Source, func(batch dataset.RecordBatch) error {
		g.Go(func() error {
			res := pipeline.Run(batch.Records, s.cfg)

			// The transform fans out; writes are funneled through one
			// transaction at a time so partitions never contend for the
			// sqlite write lock.
			mu.Lock()
			defer mu.Unlock()
			if err := s.trips.InsertBatch(job.ID, res.Records); err != nil {
				return err
			}

			rowsRead += res.Stats.RowsIn
			rowsKept += res.Stats.RowsKept
			rowsDropped += res.Stats.RowsDropped
			partitions++
			percent := 0
			if totalRows > 0 {
				percent = int(rowsRead * 100 / totalRows)
			}
			return s.jobs.UpdateProgress(job.ID, rowsRead, rowsKept, rowsDropped, partitions, percent)
		})
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		s.fail(job.ID, err)
		return
	}
	if readErr != nil {
		s.fail(job.ID, readErr)
		return
	}

	if err := s.jobs.MarkCompleted(job.ID, time.Now().Unix()); err != nil {
		log.Printf("ingest %s: %v", job.ID, err)
		return
	}
	log.Printf("ingest %s: %d rows read, %d kept, %d dropped across %d partitions",
		job.ID, rowsRead, rowsKept, rowsDropped, partitions)
}

func (s *IngestService) fail(jobID string, cause error) {
	log.Printf("ingest %s failed: %v", jobID, cause)
	if err := s.jobs.MarkFailed(jobID, time.Now().Unix(), cause.Error()); err != nil {
		log.Printf("ingest %s: %v", jobID, err)
	}
}
