// Package export serializes repository records out of an experiment
// store: sensor series to delimited text files, and video files to a
// per-camera destination plan.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
)

// ExportError wraps a failure to produce an export artifact.
type ExportError struct {
	Dest string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Dest, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Options controls the shape of a data export file.
type Options struct {
	IncludeHeaders   bool `yaml:"include_headers"`
	IncludeTimestamp bool `yaml:"include_timestamp"`
}

// Data exports the sensor series of the selected types, filtered by
// the inclusive time range, to a CSV file at destPath. Rows are
// ordered by ascending timestamp, one row per distinct timestamp, with
// one value column per selected type in selection order.
//
// An empty result set is valid output: the file is still written
// (header-only when headers are enabled) and the returned row count is
// zero. Only an unwritable destination or a store failure is an error.
func Data(db *database.DB, experimentID string, sensorTypes []string, tr models.TimeRange, opts Options, destPath string) (int, error) {
	repo := database.NewExperimentRepository(db)
	records, err := repo.SensorSeries(experimentID, sensorTypes, tr)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return 0, &ExportError{Dest: destPath, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if opts.IncludeHeaders {
		header := []string{}
		if opts.IncludeTimestamp {
			header = append(header, "timestamp")
		}
		header = append(header, sensorTypes...)
		if err := w.Write(header); err != nil {
			return 0, &ExportError{Dest: destPath, Err: err}
		}
	}

	rows := pivot(records, sensorTypes)
	for _, row := range rows {
		fields := []string{}
		if opts.IncludeTimestamp {
			fields = append(fields, row.timestamp)
		}
		fields = append(fields, row.values...)
		if err := w.Write(fields); err != nil {
			return 0, &ExportError{Dest: destPath, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, &ExportError{Dest: destPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &ExportError{Dest: destPath, Err: err}
	}

	return len(rows), nil
}

type dataRow struct {
	timestamp string
	values    []string
}

// pivot turns the flat (timestamp, type, value) series into one row
// per distinct timestamp with a value column per selected type, in
// selection order. A type with no reading at a timestamp yields an
// empty cell; a duplicate reading overwrites the earlier one.
func pivot(records []models.SensorRecord, sensorTypes []string) []dataRow {
	colIndex := make(map[string]int, len(sensorTypes))
	for i, st := range sensorTypes {
		colIndex[st] = i
	}

	var order []string
	byTimestamp := make(map[string][]string)

	for _, rec := range records {
		col, ok := colIndex[rec.SensorType]
		if !ok {
			continue
		}
		row, seen := byTimestamp[rec.Timestamp]
		if !seen {
			row = make([]string, len(sensorTypes))
			byTimestamp[rec.Timestamp] = row
			order = append(order, rec.Timestamp)
		}
		row[col] = strconv.FormatFloat(rec.Value, 'g', -1, 64)
	}

	rows := make([]dataRow, 0, len(order))
	for _, ts := range order {
		rows = append(rows, dataRow{timestamp: ts, values: byTimestamp[ts]})
	}
	return rows
}
