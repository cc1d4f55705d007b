package models

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// RunKind tags what a cached analysis blob contains.
type RunKind string

const (
	RunKindFull        RunKind = "full"
	RunKindInfluencers RunKind = "influencers"
	RunKindIdeas       RunKind = "ideas"
)

// AnalysisRun is one cached pipeline result, stored as a JSON blob so the
// schema survives model changes.
type AnalysisRun struct {
	ID           int64           `json:"id"`
	RunID        string          `json:"run_id"`
	Kind         RunKind         `json:"kind"`
	CreateDate   time.Time       `json:"create_date"`
	JSONResponse json.RawMessage `json:"json_response"`
}

// Database represents the database connection and operations
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase creates a new database connection
func NewDatabase(dbPath string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(dbPath))

	db, err := sqlitecloud.Connect(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	database := &Database{
		db: db,
	}

	if err := database.createTables(); err != nil {
		return nil, err
	}

	return database, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

// executeSQL executes a SQL command using SQLite Cloud
func (d *Database) executeSQL(sql string, args ...interface{}) error {
	if len(args) > 0 {
		return d.db.ExecuteArray(sql, args)
	}
	return d.db.Execute(sql)
}

// createTables creates the necessary tables if they don't exist
func (d *Database) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			kind TEXT NOT NULL CHECK(kind IN ('full', 'influencers', 'ideas')),
			create_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			json_response TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_runs_kind ON analysis_runs(kind)`,
	}

	for _, table := range tables {
		if err := d.executeSQL(table); err != nil {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}
	return nil
}

// StoreRun stores an analysis run blob.
func (d *Database) StoreRun(run *AnalysisRun) error {
	log.Printf("Storing analysis run %s, kind %s", run.RunID, run.Kind)

	sql := `INSERT INTO analysis_runs (run_id, kind, json_response)
			VALUES (?, ?, ?)`

	return d.db.ExecuteArray(sql, []interface{}{run.RunID, string(run.Kind), string(run.JSONResponse)})
}

// GetLatestRun retrieves the most recent run of a kind, or nil if none is
// stored yet.
func (d *Database) GetLatestRun(kind RunKind) (*AnalysisRun, error) {
	sql := `SELECT id, run_id, kind, create_date, json_response FROM analysis_runs
			WHERE kind = ?
			ORDER BY create_date DESC LIMIT 1`

	result, err := d.db.SelectArray(sql, []interface{}{string(kind)})
	if err != nil {
		return nil, err
	}

	if result.GetNumberOfRows() == 0 {
		return nil, nil
	}

	idStr, err := result.GetStringValue(0, 0)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse id: %v", err)
	}
	runID, err := result.GetStringValue(0, 1)
	if err != nil {
		return nil, err
	}
	kindStr, err := result.GetStringValue(0, 2)
	if err != nil {
		return nil, err
	}
	createDateStr, err := result.GetStringValue(0, 3)
	if err != nil {
		return nil, err
	}
	blob, err := result.GetStringValue(0, 4)
	if err != nil {
		return nil, err
	}

	createDate, err := time.Parse("2006-01-02 15:04:05", createDateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse create_date: %v", err)
	}

	return &AnalysisRun{
		ID:           id,
		RunID:        runID,
		Kind:         RunKind(kindStr),
		CreateDate:   createDate,
		JSONResponse: json.RawMessage(blob),
	}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
