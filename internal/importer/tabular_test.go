package importer

import (
	"testing"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
)

func TestImportTabular_EndToEnd(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "a.csv", "2024-01-01 10:00:00,Temp,23.5\nbad,line\n")

	result, err := ImportTabular(db, folder, "E1", DefaultPolicy())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.FilesProcessed != 1 {
		t.Errorf("Expected 1 file processed, got %d", result.FilesProcessed)
	}
	if result.RowsInserted != 1 {
		t.Errorf("Expected 1 row inserted, got %d", result.RowsInserted)
	}
	if result.RowsSkipped != 1 {
		t.Errorf("Expected 1 line skipped, got %d", result.RowsSkipped)
	}

	repo := database.NewExperimentRepository(db)
	records, err := repo.SensorRecords("E1", models.TimeRange{}, 0)
	if err != nil {
		t.Fatalf("Failed to query records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected exactly 1 sensor record, got %d", len(records))
	}
	rec := records[0]
	if rec.Value != 23.5 || rec.SensorType != "Temp" || rec.Timestamp != "2024-01-01 10:00:00" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.FileSource == "" {
		t.Error("Record missing source file provenance")
	}
}

func TestImportTabular_HeaderDetection(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "a.csv",
		"time,sensor,value\n"+
			"2024-01-01 10:00:00,Temp,23.5\n"+
			"2024-01-01 10:00:01,Temp,23.6\n")

	result, err := ImportTabular(db, folder, "E1", DefaultPolicy())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.RowsInserted != 2 {
		t.Errorf("Expected 2 rows (header excluded), got %d", result.RowsInserted)
	}
}

func TestImportTabular_HeaderDetectionDisabled(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "a.csv",
		"2024-01-01 10:00:00,Temp,23.5\n"+
			"2024-01-01 10:00:01,Temp,23.6\n")

	// With the heuristic on, the first data line is mistaken for a
	// header and dropped; with it off, both lines survive.
	withHeuristic, err := ImportTabular(db, folder, "E1", Policy{TabularHeaderDetection: true})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if withHeuristic.RowsInserted != 1 {
		t.Errorf("Expected heuristic to drop first line, got %d rows", withHeuristic.RowsInserted)
	}

	createExperiment(t, db, "E2")
	without, err := ImportTabular(db, folder, "E2", Policy{TabularHeaderDetection: false})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if without.RowsInserted != 2 {
		t.Errorf("Expected 2 rows without heuristic, got %d", without.RowsInserted)
	}
}

func TestImportTabular_MalformedLinesNeverAbort(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "a.csv",
		"time,sensor,value\n"+
			"2024-01-01 10:00:00,Temp,23.5\n"+
			"only-one-field\n"+
			"two,fields\n"+
			"2024-01-01 10:00:01,Temp,not-a-number\n"+
			"2024-01-01 10:00:02,Temp,24.0\n")

	result, err := ImportTabular(db, folder, "E1", DefaultPolicy())
	if err != nil {
		t.Fatalf("Malformed lines must not abort the import: %v", err)
	}
	if result.RowsInserted != 2 {
		t.Errorf("Expected 2 rows inserted, got %d", result.RowsInserted)
	}
	if result.RowsSkipped != 3 {
		t.Errorf("Expected 3 lines skipped, got %d", result.RowsSkipped)
	}
}

func TestImportTabular_MultipleFilesDiscoveryOrder(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "b.csv", "2024-01-01 10:00:00,Temp,2.0\n")
	writeFile(t, folder, "a.csv", "2024-01-01 10:00:00,Temp,1.0\n")
	writeFile(t, folder, "sub/c.dat", "2024-01-01 10:00:00,Temp,3.0\n")

	result, err := ImportTabular(db, folder, "E1", DefaultPolicy())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.FilesProcessed != 3 {
		t.Errorf("Expected 3 files processed, got %d", result.FilesProcessed)
	}
	if result.RowsInserted != 3 {
		t.Errorf("Expected 3 rows inserted, got %d", result.RowsInserted)
	}

	records, err := database.NewExperimentRepository(db).SensorRecords("E1", models.TimeRange{}, 0)
	if err != nil {
		t.Fatalf("Failed to query records: %v", err)
	}
	// Same timestamp everywhere, so insertion order (file-discovery
	// order: a, b, then sub/c) decides.
	if records[0].Value != 1.0 || records[1].Value != 2.0 || records[2].Value != 3.0 {
		t.Errorf("Rows not in file-discovery order: %+v", records)
	}
}

func TestImportTabular_MissingFolder(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	result, err := ImportTabular(db, "/no/such/folder", "E1", DefaultPolicy())
	if err != nil {
		t.Fatalf("Missing folder must not fail: %v", err)
	}
	if result.FilesProcessed != 0 || result.RowsInserted != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

func TestImportTabular_Reimport(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	folder := t.TempDir()
	writeFile(t, folder, "a.csv", "2024-01-01 10:00:00,Temp,23.5\n")

	for i := 0; i < 2; i++ {
		if _, err := ImportTabular(db, folder, "E1", DefaultPolicy()); err != nil {
			t.Fatalf("Import %d failed: %v", i, err)
		}
	}

	// Import is append-only: re-importing duplicates rows.
	records, err := database.NewExperimentRepository(db).SensorRecords("E1", models.TimeRange{}, 0)
	if err != nil {
		t.Fatalf("Failed to query records: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 rows after re-import, got %d", len(records))
	}
}
