package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jengzang/fares-backend-go/internal/database"
	"github.com/jengzang/fares-backend-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		t.Fatal(err)
	}
	return db
}

func sampleFeature(fare float32, weekend bool) models.FeatureRecord {
	dow := int32(3)
	if weekend {
		dow = 1
	}
	return models.FeatureRecord{
		FareAmount:        fare,
		PassengerCount:    2,
		RateCode:          1,
		TripDistance:      3.1,
		PickupLongitude:   -73.99,
		PickupLatitude:    40.75,
		DropoffLongitude:  -73.98,
		DropoffLatitude:   40.76,
		Hour:              10,
		Year:              2014,
		Month:             6,
		Day:               15,
		Diff:              900000,
		PickupLatitudeR:   40.75,
		PickupLongitudeR:  -73.99,
		DropoffLatitudeR:  40.76,
		DropoffLongitudeR: -73.98,
		HDistance:         1.4,
		DayOfWeek:         dow,
		IsWeekend:         weekend,
	}
}

func TestTripRepository_InsertAndQuery(t *testing.T) {
	repo := NewTripRepository(testDB(t))

	batch := []models.FeatureRecord{
		sampleFeature(12.5, true),
		sampleFeature(30, false),
		sampleFeature(7.5, true),
	}
	if err := repo.InsertBatch("job-1", batch); err != nil {
		t.Fatal(err)
	}

	recs, total, err := repo.GetTrips(models.TripFilter{Hour: -1, DayOfWeek: -1})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(recs) != 3 {
		t.Fatalf("total = %d, rows = %d, want 3/3", total, len(recs))
	}
	if recs[0].JobID != "job-1" {
		t.Errorf("JobID = %q, want job-1", recs[0].JobID)
	}
	if !recs[0].IsWeekend {
		t.Error("IsWeekend lost through round trip")
	}

	// Fare range filter
	_, total, err = repo.GetTrips(models.TripFilter{Hour: -1, DayOfWeek: -1, MinFare: 10, MaxFare: 20})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("fare-filtered total = %d, want 1", total)
	}

	// Weekend filter
	_, total, err = repo.GetTrips(models.TripFilter{Hour: -1, DayOfWeek: -1, WeekendOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("weekend total = %d, want 2", total)
	}
}

func TestTripRepository_Statistics(t *testing.T) {
	repo := NewTripRepository(testDB(t))

	if err := repo.InsertBatch("job-1", []models.FeatureRecord{
		sampleFeature(10, true),
		sampleFeature(20, false),
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := repo.GetStatistics()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", stats.TotalRows)
	}
	if stats.FareMin != 10 || stats.FareMax != 20 || stats.FareMean != 15 {
		t.Errorf("fare stats = %v/%v/%v, want 10/20/15", stats.FareMin, stats.FareMax, stats.FareMean)
	}
	if stats.WeekendShare != 0.5 {
		t.Errorf("WeekendShare = %v, want 0.5", stats.WeekendShare)
	}
}

func TestTripRepository_Heatmap(t *testing.T) {
	repo := NewTripRepository(testDB(t))

	a := sampleFeature(10, false)
	b := sampleFeature(20, false)
	c := sampleFeature(30, false)
	c.PickupLatitudeR = 40.80
	c.PickupLongitudeR = -73.95

	if err := repo.InsertBatch("job-1", []models.FeatureRecord{a, b, c}); err != nil {
		t.Fatal(err)
	}

	cells, err := repo.GetHeatmap(models.HeatmapFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(cells))
	}
	// Ordered by count descending
	if cells[0].Count != 2 || cells[0].MeanFare != 15 {
		t.Errorf("top cell = %+v, want count 2 mean fare 15", cells[0])
	}
}

func TestTripRepository_TrainingData(t *testing.T) {
	repo := NewTripRepository(testDB(t))

	if err := repo.InsertBatch("job-1", []models.FeatureRecord{sampleFeature(12.5, true)}); err != nil {
		t.Fatal(err)
	}

	X, y, err := repo.GetTrainingData()
	if err != nil {
		t.Fatal(err)
	}
	if len(X) != 1 || len(y) != 1 {
		t.Fatalf("got %d/%d rows, want 1/1", len(X), len(y))
	}
	if len(X[0]) != len(models.FeatureColumns) {
		t.Errorf("feature vector width = %d, want %d", len(X[0]), len(models.FeatureColumns))
	}
	if y[0] != 12.5 {
		t.Errorf("target = %v, want 12.5", y[0])
	}
}

func TestJobRepository_Lifecycle(t *testing.T) {
	repo := NewJobRepository(testDB(t))

	job := &models.IngestJob{ID: "j-1", Source: "/tmp/a.csv", PartitionSize: 100}
	if err := repo.Create(job); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkRunning("j-1", 1000); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateProgress("j-1", 50, 40, 10, 1, 50); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkCompleted("j-1", 2000); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID("j-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("job not found")
	}
	if got.Status != models.JobStatusCompleted || got.ProgressPercent != 100 {
		t.Errorf("status/progress = %s/%d, want completed/100", got.Status, got.ProgressPercent)
	}
	if got.RowsKept != 40 || got.RowsDropped != 10 {
		t.Errorf("rows kept/dropped = %d/%d, want 40/10", got.RowsKept, got.RowsDropped)
	}

	missing, err := repo.GetByID("nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for unknown job")
	}
}

func TestRunRepository_Lifecycle(t *testing.T) {
	repo := NewRunRepository(testDB(t))

	run := &models.TrainingRun{ID: "r-1", Trainer: "mean_baseline", TestRatio: 0.25, Seed: 7}
	if err := repo.Create(run); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkRunning("r-1", 1000); err != nil {
		t.Fatal(err)
	}

	run.TrainRows = 75
	run.TestRows = 25
	run.MSE = 4
	run.RMSE = 2
	run.MAE = 1.5
	run.R2 = 0.1
	run.EndTime = 2000
	if err := repo.Complete(run); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID("r-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("run not found")
	}
	if got.Status != models.JobStatusCompleted || got.MSE != 4 || got.TestRows != 25 {
		t.Errorf("got %+v, want completed mse=4 test_rows=25", got)
	}

	runs, total, err := repo.List(models.RunFilter{Status: models.JobStatusCompleted})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(runs) != 1 {
		t.Errorf("list = %d/%d, want 1/1", total, len(runs))
	}
}
