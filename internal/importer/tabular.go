package importer

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
	"github.com/qinglab/replay/internal/scanner"
)

// ImportTabular parses every tabular file under folder and inserts the
// well-formed lines as sensor records for the given experiment.
//
// A line is well-formed when it splits on commas into at least three
// fields and the third field parses as a float. Anything else is
// counted as skipped and ignored. An unreadable file is logged and
// counted as failed; only a store failure aborts the import.
func ImportTabular(db *database.DB, folder, experimentID string, policy Policy) (*Result, error) {
	result := newResult()

	files, err := scanner.Scan(folder, scanner.Tabular)
	if err != nil {
		return result, err
	}

	repo := database.NewExperimentRepository(db)
	for _, path := range files {
		records, skipped, err := parseTabularFile(path, experimentID, policy)
		if err != nil {
			log.Printf("import %s: skipping unreadable file %s: %v", result.BatchID, path, err)
			result.FilesFailed++
			continue
		}

		if err := repo.InsertSensorRecords(records); err != nil {
			return result, err
		}

		result.FilesProcessed++
		result.RowsInserted += len(records)
		result.RowsSkipped += skipped
	}

	log.Printf("import %s: tabular folder %s: %d files, %d rows, %d lines skipped",
		result.BatchID, folder, result.FilesProcessed, result.RowsInserted, result.RowsSkipped)
	return result, nil
}

func parseTabularFile(path, experimentID string, policy Policy) ([]models.SensorRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var records []models.SensorRecord
	skipped := 0

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		lineNo++

		// Header heuristic: a first line containing a comma is assumed
		// to be column labels.
		if lineNo == 1 && policy.TabularHeaderDetection && strings.Contains(line, ",") {
			continue
		}
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			skipped++
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			skipped++
			continue
		}

		records = append(records, models.SensorRecord{
			ExperimentID: experimentID,
			Timestamp:    strings.TrimSpace(parts[0]),
			SensorType:   strings.TrimSpace(parts[1]),
			Value:        value,
			FileSource:   path,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}

	return records, skipped, nil
}
