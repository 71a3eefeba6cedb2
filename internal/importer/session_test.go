package importer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
)

func TestSession_Run(t *testing.T) {
	db := setupStore(t)

	tabularDir := t.TempDir()
	logDir := t.TempDir()
	nvrDir := t.TempDir()
	writeFile(t, tabularDir, "a.csv", "2024-01-01 10:00:00,Temp,23.5\n")
	writeFile(t, logDir, "run.log", "2024-01-01T10:00:00 INFO started\n")
	writeFile(t, nvrDir, "cam.mp4", strings.Repeat("x", 2_000_000))

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	session := &Session{
		Experiment: *models.NewExperiment("E1", "Test", start, start.Add(time.Hour), "desc"),
		TabularDir: tabularDir,
		LogDir:     logDir,
		NVRDir:     nvrDir,
		Policy:     DefaultPolicy(),
	}

	result, err := session.Run(db)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if result.Tabular.RowsInserted != 1 {
		t.Errorf("Expected 1 sensor row, got %d", result.Tabular.RowsInserted)
	}
	if result.Logs.RowsInserted != 1 {
		t.Errorf("Expected 1 log row, got %d", result.Logs.RowsInserted)
	}
	if result.Videos.FilesProcessed != 1 {
		t.Errorf("Expected 1 video registered, got %d", result.Videos.FilesProcessed)
	}

	exps, err := database.NewExperimentRepository(db).ListExperiments()
	if err != nil {
		t.Fatalf("Failed to list experiments: %v", err)
	}
	if len(exps) != 1 || exps[0].ID != "E1" {
		t.Errorf("Unexpected experiments: %+v", exps)
	}
}

func TestSession_DuplicateExperiment(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	session := &Session{
		Experiment: *models.NewExperiment("E1", "Test", start, start, ""),
	}

	_, err := session.Run(db)
	if !errors.Is(err, database.ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestSession_EmptyFolders(t *testing.T) {
	db := setupStore(t)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	session := &Session{
		Experiment: *models.NewExperiment("E1", "Test", start, start, ""),
		Policy:     DefaultPolicy(),
	}

	result, err := session.Run(db)
	if err != nil {
		t.Fatalf("Session with no folders should succeed: %v", err)
	}
	if result.Tabular.FilesProcessed != 0 || result.Logs.FilesProcessed != 0 || result.Videos.FilesProcessed != 0 {
		t.Errorf("Expected empty results, got %+v", result)
	}
}
