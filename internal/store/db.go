package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a run does not exist
	ErrNotFound = errors.New("run not found")
	// ErrNotReady is returned when the store has not been initialized
	ErrNotReady = errors.New("run store not initialized")
)

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		city TEXT,
		month TEXT,
		day TEXT,
		status TEXT,
		row_count INTEGER DEFAULT 0,
		report TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := conn.Exec(runTable); err != nil {
		conn.Close()
		return err
	}
	if _, err := conn.Exec(errorTable); err != nil {
		conn.Close()
		return err
	}

	db = conn
	return nil
}

// Ready reports whether the store has been initialized
func Ready() bool {
	return db != nil
}

// Close releases the DB connection
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// SaveRun stores a new pending run
func SaveRun(runID string, c model.FilterCriteria) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, city, month, day, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, c.City, c.Month, c.Day, model.RunPending, now, now)
	return err
}

// UpdateRunStatus updates run status
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunReport stores the final report of a run
func SaveRunReport(runID string, report *model.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`UPDATE runs SET report = ?, row_count = ?, updated_at = ? WHERE id = ?`,
		string(reportJSON), report.RowCount, now, runID)
	return err
}

// SaveRunError records an error for a run
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// ListRuns returns all runs, newest first
func ListRuns() ([]model.RunSummary, error) {
	if db == nil {
		return nil, ErrNotReady
	}
	rows, err := db.Query(`SELECT id, city, month, day, status, row_count, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []model.RunSummary{}
	for rows.Next() {
		var r model.RunSummary
		if err := rows.Scan(&r.ID, &r.City, &r.Month, &r.Day, &r.Status, &r.RowCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches a run and its report
func GetRun(runID string) (*model.RunDetail, error) {
	if db == nil {
		return nil, ErrNotReady
	}
	var r model.RunDetail
	var reportJSON sql.NullString

	err := db.QueryRow(`SELECT id, city, month, day, status, row_count, report, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.City, &r.Month, &r.Day, &r.Status, &r.RowCount, &reportJSON, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	} else if err != nil {
		return nil, err
	}

	if reportJSON.Valid && reportJSON.String != "" {
		var report model.Report
		if err := json.Unmarshal([]byte(reportJSON.String), &report); err != nil {
			return nil, err
		}
		r.Report = &report
	}
	return &r, nil
}

// GetRunErrors returns errors recorded for a run
func GetRunErrors(runID string) ([]model.RunError, error) {
	if db == nil {
		return nil, ErrNotReady
	}
	rows, err := db.Query(`SELECT id, run_id, error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	errs := []model.RunError{}
	for rows.Next() {
		var e model.RunError
		if err := rows.Scan(&e.ID, &e.RunID, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		errs = append(errs, e)
	}
	return errs, rows.Err()
}
