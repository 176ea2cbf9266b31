package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/repository"
	"github.com/jengzang/fares-backend-go/internal/training"
)

// TrainingService runs fit/score cycles over the persisted feature rows.
// Trainers are injected by name; the service never references a concrete
// model implementation beyond the registry handed to it.
type TrainingService struct {
	runs     *repository.RunRepository
	trips    *repository.TripRepository
	trainers map[string]training.Trainer
}

// NewTrainingService creates a new training service
func NewTrainingService(runs *repository.RunRepository, trips *repository.TripRepository,
	trainers map[string]training.Trainer) *TrainingService {
	return &TrainingService{
		runs:     runs,
		trips:    trips,
		trainers: trainers,
	}
}

// DefaultTrainers returns the stock trainer registry
func DefaultTrainers() map[string]training.Trainer {
	baseline := training.MeanRegressor{}
	forest := training.RandomForestRegressor{Seed: 1}
	return map[string]training.Trainer{
		baseline.Name(): baseline,
		forest.Name():   forest,
	}
}

// StartRun registers a pending run and executes it in the background
func (s *TrainingService) StartRun(trainerName string, testRatio float64, seed int64) (*models.TrainingRun, error) {
	if trainerName == "" {
		trainerName = training.MeanRegressor{}.Name()
	}
	trainer, ok := s.trainers[trainerName]
	if !ok {
		return nil, fmt.Errorf("unknown trainer: %s", trainerName)
	}
	if testRatio <= 0 || testRatio >= 1 {
		testRatio = 0.25
	}

	run := &models.TrainingRun{
		ID:        uuid.NewString(),
		Trainer:   trainer.Name(),
		TestRatio: testRatio,
		Seed:      seed,
		Status:    models.JobStatusPending,
	}
	if err := s.runs.Create(run); err != nil {
		return nil, err
	}

	go s.execute(run, trainer)

	return run, nil
}

// GetRun retrieves a run by ID
func (s *TrainingService) GetRun(id string) (*models.TrainingRun, error) {
	return s.runs.GetByID(id)
}

// ListRuns retrieves runs, newest first
func (s *TrainingService) ListRuns(filter models.RunFilter) ([]models.TrainingRun, int64, error) {
	return s.runs.List(filter)
}

func (s *TrainingService) execute(run *models.TrainingRun, trainer training.Trainer) {
	if err := s.runs.MarkRunning(run.ID, time.Now().Unix()); err != nil {
		log.Printf("training %s: %v", run.ID, err)
		return
	}

	X, y, err := s.trips.GetTrainingData()
	if err != nil {
		s.fail(run.ID, err)
		return
	}
	if len(X) == 0 {
		s.fail(run.ID, training.ErrNoData)
		return
	}

	XTrain, XTest, yTrain, yTest := training.TrainTestSplit(X, y, run.TestRatio, run.Seed)
	if len(XTrain) == 0 || len(XTest) == 0 {
		s.fail(run.ID, fmt.Errorf("split produced an empty set (%d train / %d test)", len(XTrain), len(XTest)))
		return
	}

	model, err := trainer.Fit(XTrain, yTrain)
	if err != nil {
		s.fail(run.ID, err)
		return
	}

	preds := model.Predict(XTest)
	run.TrainRows = int64(len(XTrain))
	run.TestRows = int64(len(XTest))
	run.MSE = training.MSE(yTest, preds)
	run.RMSE = training.RMSE(yTest, preds)
	run.MAE = training.MAE(yTest, preds)
	run.R2 = training.R2(yTest, preds)
	run.EndTime = time.Now().Unix()

	if err := s.runs.Complete(run); err != nil {
		log.Printf("training %s: %v", run.ID, err)
		return
	}
	log.Printf("training %s (%s): mse=%.4f rmse=%.4f over %d test rows",
		run.ID, run.Trainer, run.MSE, run.RMSE, run.TestRows)
}

func (s *TrainingService) fail(runID string, cause error) {
	log.Printf("training %s failed: %v", runID, cause)
	if err := s.runs.MarkFailed(runID, time.Now().Unix(), cause.Error()); err != nil {
		log.Printf("training %s: %v", runID, err)
	}
}
