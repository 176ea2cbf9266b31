package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/fares-backend-go/internal/models"
)

// TripRepository handles database operations for derived trip feature rows
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const featureColumns = `id, job_id, fare_amount, passenger_count, rate_code, trip_distance,
	pickup_longitude, pickup_latitude, dropoff_longitude, dropoff_latitude,
	hour, year, month, day, diff,
	pickup_latitude_r, pickup_longitude_r, dropoff_latitude_r, dropoff_longitude_r,
	h_distance, day_of_week, is_weekend`

// InsertBatch writes one partition's surviving rows in a single transaction
func (r *TripRepository) InsertBatch(jobID string, recs []models.FeatureRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trip_features (
		job_id, fare_amount, passenger_count, rate_code, trip_distance,
		pickup_longitude, pickup_latitude, dropoff_longitude, dropoff_latitude,
		hour, year, month, day, diff,
		pickup_latitude_r, pickup_longitude_r, dropoff_latitude_r, dropoff_longitude_r,
		h_distance, day_of_week, is_weekend
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range recs {
		_, err := stmt.Exec(
			jobID, f.FareAmount, f.PassengerCount, f.RateCode, f.TripDistance,
			f.PickupLongitude, f.PickupLatitude, f.DropoffLongitude, f.DropoffLatitude,
			f.Hour, f.Year, f.Month, f.Day, f.Diff,
			f.PickupLatitudeR, f.PickupLongitudeR, f.DropoffLatitudeR, f.DropoffLongitudeR,
			f.HDistance, f.DayOfWeek, f.IsWeekend,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert feature row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// GetTrips retrieves feature rows with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.FeatureRecord, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.JobID != "" {
		conditions = append(conditions, "job_id = ?")
		args = append(args, filter.JobID)
	}
	if filter.MinFare > 0 {
		conditions = append(conditions, "fare_amount >= ?")
		args = append(args, filter.MinFare)
	}
	if filter.MaxFare > 0 {
		conditions = append(conditions, "fare_amount <= ?")
		args = append(args, filter.MaxFare)
	}
	if filter.Hour >= 0 {
		conditions = append(conditions, "hour = ?")
		args = append(args, filter.Hour)
	}
	if filter.DayOfWeek >= 0 {
		conditions = append(conditions, "day_of_week = ?")
		args = append(args, filter.DayOfWeek)
	}
	if filter.WeekendOnly {
		conditions = append(conditions, "is_weekend = 1")
	}
	if filter.MinDistance > 0 {
		conditions = append(conditions, "h_distance >= ?")
		args = append(args, filter.MinDistance)
	}
	if filter.Year > 0 {
		conditions = append(conditions, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.Month > 0 {
		conditions = append(conditions, "month = ?")
		args = append(args, filter.Month)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM trip_features" + whereClause
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feature rows: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}

	query := "SELECT " + featureColumns + " FROM trip_features" + whereClause +
		" ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feature rows: %w", err)
	}
	defer rows.Close()

	var recs []models.FeatureRecord
	for rows.Next() {
		f, err := scanFeatureRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		recs = append(recs, f)
	}

	return recs, total, rows.Err()
}

// GetStatistics computes aggregate statistics over all feature rows
func (r *TripRepository) GetStatistics() (*models.TripStatistics, error) {
	stats := &models.TripStatistics{}

	err := r.db.QueryRow(`SELECT COUNT(*),
		COALESCE(MIN(fare_amount), 0), COALESCE(MAX(fare_amount), 0), COALESCE(AVG(fare_amount), 0),
		COALESCE(AVG(h_distance), 0), COALESCE(AVG(diff), 0),
		COALESCE(SUM(is_weekend), 0),
		COALESCE(MIN(year), 0), COALESCE(MAX(year), 0)
		FROM trip_features`).Scan(
		&stats.TotalRows,
		&stats.FareMin, &stats.FareMax, &stats.FareMean,
		&stats.MeanHDistanceKm, &stats.MeanDiffMS,
		&stats.WeekendRows,
		&stats.YearMin, &stats.YearMax,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	if stats.TotalRows > 0 {
		stats.WeekendShare = float64(stats.WeekendRows) / float64(stats.TotalRows)
	}
	return stats, nil
}

// GetHeatmap aggregates pickup counts per 0.01-degree grid cell inside the
// bounding box
func (r *TripRepository) GetHeatmap(filter models.HeatmapFilter) ([]models.HeatmapCell, error) {
	var conditions []string
	var args []interface{}

	if filter.MinLat != 0 || filter.MaxLat != 0 {
		conditions = append(conditions, "pickup_latitude_r >= ? AND pickup_latitude_r <= ?")
		args = append(args, filter.MinLat, filter.MaxLat)
	}
	if filter.MinLon != 0 || filter.MaxLon != 0 {
		conditions = append(conditions, "pickup_longitude_r >= ? AND pickup_longitude_r <= ?")
		args = append(args, filter.MinLon, filter.MaxLon)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	having := ""
	if filter.MinCount > 0 {
		having = " HAVING COUNT(*) >= ?"
		args = append(args, filter.MinCount)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	args = append(args, limit)

	query := `SELECT pickup_latitude_r, pickup_longitude_r, COUNT(*), AVG(fare_amount)
		FROM trip_features` + whereClause + `
		GROUP BY pickup_latitude_r, pickup_longitude_r` + having + `
		ORDER BY COUNT(*) DESC LIMIT ?`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query heatmap: %w", err)
	}
	defer rows.Close()

	var cells []models.HeatmapCell
	for rows.Next() {
		var c models.HeatmapCell
		if err := rows.Scan(&c.Lat, &c.Lon, &c.Count, &c.MeanFare); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap cell: %w", err)
		}
		cells = append(cells, c)
	}

	return cells, rows.Err()
}

// GetFares loads every fare value for distribution statistics
func (r *TripRepository) GetFares() ([]float64, error) {
	rows, err := r.db.Query("SELECT fare_amount FROM trip_features")
	if err != nil {
		return nil, fmt.Errorf("failed to query fares: %w", err)
	}
	defer rows.Close()

	var fares []float64
	for rows.Next() {
		var f float64
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("failed to scan fare: %w", err)
		}
		fares = append(fares, f)
	}

	return fares, rows.Err()
}

// GetTrainingData loads every feature row as model input vectors plus the
// fare target
func (r *TripRepository) GetTrainingData() ([][]float32, []float32, error) {
	rows, err := r.db.Query("SELECT " + featureColumns + " FROM trip_features ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query training data: %w", err)
	}
	defer rows.Close()

	var X [][]float32
	var y []float32
	for rows.Next() {
		f, err := scanFeatureRecord(rows)
		if err != nil {
			return nil, nil, err
		}
		X = append(X, f.Features())
		y = append(y, f.FareAmount)
	}

	return X, y, rows.Err()
}

func scanFeatureRecord(rows *sql.Rows) (models.FeatureRecord, error) {
	var f models.FeatureRecord
	err := rows.Scan(
		&f.ID, &f.JobID, &f.FareAmount, &f.PassengerCount, &f.RateCode, &f.TripDistance,
		&f.PickupLongitude, &f.PickupLatitude, &f.DropoffLongitude, &f.DropoffLatitude,
		&f.Hour, &f.Year, &f.Month, &f.Day, &f.Diff,
		&f.PickupLatitudeR, &f.PickupLongitudeR, &f.DropoffLatitudeR, &f.DropoffLongitudeR,
		&f.HDistance, &f.DayOfWeek, &f.IsWeekend,
	)
	if err != nil {
		return f, fmt.Errorf("failed to scan feature row: %w", err)
	}
	return f, nil
}
