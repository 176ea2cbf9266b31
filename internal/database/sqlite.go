package database

import (
	"database/sql"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Path string
}

// Open opens a sqlite database at path with the connection settings every
// handle must carry: WAL journaling so ingestion writes batches while
// queries read, and a busy timeout so a second writer waits instead of
// failing with SQLITE_BUSY. Callers that open their own handle (tests,
// tools) go through here, not sql.Open, or they get a differently-behaving
// database.
func Open(path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	d.SetMaxOpenConns(10)
	d.SetMaxIdleConns(5)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := d.Exec(pragma); err != nil {
			d.Close()
			return nil, err
		}
	}

	if err := d.Ping(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Init opens the process-wide sqlite database. Safe to call more than once;
// only the first call opens.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = Open(cfg.Path)
		if err != nil {
			return
		}
		log.Printf("Database initialized: %s", cfg.Path)
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
