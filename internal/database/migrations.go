package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the full ordered schema history. New changes append a new
// version; applied versions are never edited.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trip_features",
		SQL: `
			CREATE TABLE IF NOT EXISTS trip_features (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				job_id TEXT NOT NULL,
				fare_amount REAL NOT NULL,
				passenger_count INTEGER NOT NULL,
				rate_code INTEGER NOT NULL,
				trip_distance REAL NOT NULL,
				pickup_longitude REAL NOT NULL,
				pickup_latitude REAL NOT NULL,
				dropoff_longitude REAL NOT NULL,
				dropoff_latitude REAL NOT NULL,
				hour INTEGER NOT NULL,
				year INTEGER NOT NULL,
				month INTEGER NOT NULL,
				day INTEGER NOT NULL,
				diff INTEGER NOT NULL,
				pickup_latitude_r REAL NOT NULL,
				pickup_longitude_r REAL NOT NULL,
				dropoff_latitude_r REAL NOT NULL,
				dropoff_longitude_r REAL NOT NULL,
				h_distance REAL NOT NULL,
				day_of_week INTEGER NOT NULL,
				is_weekend INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_trip_features_job ON trip_features(job_id);
			CREATE INDEX IF NOT EXISTS idx_trip_features_pickup_cell
				ON trip_features(pickup_latitude_r, pickup_longitude_r);
			CREATE INDEX IF NOT EXISTS idx_trip_features_year_month
				ON trip_features(year, month);
		`,
	},
	{
		Version: 2,
		Name:    "create_ingest_jobs",
		SQL: `
			CREATE TABLE IF NOT EXISTS ingest_jobs (
				id TEXT PRIMARY KEY,
				source TEXT NOT NULL,
				partition_size INTEGER NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				progress_percent INTEGER NOT NULL DEFAULT 0,
				rows_read INTEGER NOT NULL DEFAULT 0,
				rows_kept INTEGER NOT NULL DEFAULT 0,
				rows_dropped INTEGER NOT NULL DEFAULT 0,
				partitions INTEGER NOT NULL DEFAULT 0,
				start_time INTEGER,
				end_time INTEGER,
				error_message TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_training_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS training_runs (
				id TEXT PRIMARY KEY,
				trainer TEXT NOT NULL,
				test_ratio REAL NOT NULL,
				seed INTEGER NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				train_rows INTEGER NOT NULL DEFAULT 0,
				test_rows INTEGER NOT NULL DEFAULT 0,
				mse REAL NOT NULL DEFAULT 0,
				rmse REAL NOT NULL DEFAULT 0,
				mae REAL NOT NULL DEFAULT 0,
				r2 REAL NOT NULL DEFAULT 0,
				start_time INTEGER,
				end_time INTEGER,
				error_message TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// MigrationManager applies pending migrations
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a migration manager
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns the set of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// ApplyMigration applies a single migration in a transaction
func (m *MigrationManager) ApplyMigration(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)",
		migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	log.Printf("Applied migration %d: %s", migration.Version, migration.Name)
	return nil
}

// RunMigrations applies all pending migrations in version order
func (m *MigrationManager) RunMigrations() error {
	if err := m.InitMigrationsTable(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, mig := range migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, mig := range pending {
		if err := m.ApplyMigration(mig); err != nil {
			return err
		}
	}

	return nil
}
