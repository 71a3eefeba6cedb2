package importer

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
	"github.com/qinglab/replay/internal/scanner"
)

// ImportLogs parses every log file under folder and inserts the
// well-formed lines as log records for the given experiment.
//
// A line is split on spaces into at most three fields: timestamp,
// level, and the message remainder (which may itself contain spaces).
// Lines with fewer than three fields are counted as skipped.
func ImportLogs(db *database.DB, folder, experimentID string, policy Policy) (*Result, error) {
	result := newResult()

	files, err := scanner.Scan(folder, scanner.Log)
	if err != nil {
		return result, err
	}

	repo := database.NewExperimentRepository(db)
	for _, path := range files {
		records, skipped, err := parseLogFile(path, experimentID, policy)
		if err != nil {
			log.Printf("import %s: skipping unreadable file %s: %v", result.BatchID, path, err)
			result.FilesFailed++
			continue
		}

		if err := repo.InsertLogRecords(records); err != nil {
			return result, err
		}

		result.FilesProcessed++
		result.RowsInserted += len(records)
		result.RowsSkipped += skipped
	}

	log.Printf("import %s: log folder %s: %d files, %d rows, %d lines skipped",
		result.BatchID, folder, result.FilesProcessed, result.RowsInserted, result.RowsSkipped)
	return result, nil
}

func parseLogFile(path, experimentID string, policy Policy) ([]models.LogRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var records []models.LogRecord
	skipped := 0

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		lineNo++
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			if lineNo == 1 && policy.LogHeaderDetection {
				continue
			}
			skipped++
			continue
		}

		records = append(records, models.LogRecord{
			ExperimentID: experimentID,
			Timestamp:    strings.TrimSpace(parts[0]),
			Level:        strings.TrimSpace(parts[1]),
			Message:      strings.TrimSpace(parts[2]),
			FileSource:   path,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}

	return records, skipped, nil
}
