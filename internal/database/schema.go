package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Table names.
const (
	TableExperiments = "experiments"
	TableSensorData  = "sensor_data"
	TableLogData     = "log_data"
	TableVideoData   = "video_data"
	TableAnnotations = "annotations"
	TableTags        = "tags"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS experiments (
		id TEXT PRIMARY KEY,
		name TEXT,
		start_time TEXT,
		end_time TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sensor_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT,
		timestamp TEXT,
		sensor_type TEXT,
		value REAL,
		file_source TEXT,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id)
	)`,
	`CREATE TABLE IF NOT EXISTS log_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT,
		timestamp TEXT,
		level TEXT,
		message TEXT,
		file_source TEXT,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id)
	)`,
	`CREATE TABLE IF NOT EXISTS video_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT,
		device_id TEXT,
		file_path TEXT,
		duration INTEGER,
		file_size INTEGER,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id)
	)`,
	`CREATE TABLE IF NOT EXISTS annotations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT,
		timestamp TEXT,
		annotation_type TEXT,
		coordinates TEXT,
		description TEXT,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT,
		start_time TEXT,
		end_time TEXT,
		name TEXT,
		description TEXT,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id)
	)`,
}

// requiredColumns lists, per required table, the columns a store file
// must carry to be usable by this package. Extra columns are tolerated.
var requiredColumns = map[string][]string{
	TableExperiments: {"id", "name", "start_time", "end_time", "description"},
	TableSensorData:  {"id", "experiment_id", "timestamp", "sensor_type", "value", "file_source"},
	TableLogData:     {"id", "experiment_id", "timestamp", "level", "message", "file_source"},
	TableVideoData:   {"id", "experiment_id", "device_id", "file_path", "duration", "file_size"},
	TableAnnotations: {"id", "experiment_id", "timestamp", "annotation_type", "coordinates", "description"},
	TableTags:        {"id", "experiment_id", "start_time", "end_time", "name", "description"},
}

// CheckSchema verifies that every required table exists and carries the
// expected columns. It is invoked lazily, on the repository's first
// query, so that opening a store stays cheap and pre-existing files are
// only rejected when actually used.
func CheckSchema(dbx *sqlx.DB) error {
	for table, columns := range requiredColumns {
		present, err := tableColumns(dbx, table)
		if err != nil {
			return fmt.Errorf("failed to inspect table %s: %w", table, err)
		}
		var missing []string
		for _, col := range columns {
			if !present[col] {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
		}
	}
	return nil
}

func tableColumns(dbx *sqlx.DB, table string) (map[string]bool, error) {
	rows, err := dbx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}
