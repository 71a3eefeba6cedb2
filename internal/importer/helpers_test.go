package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
)

func setupStore(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createExperiment(t *testing.T, db *database.DB, id string) {
	t.Helper()

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	exp := models.NewExperiment(id, "Test", start, start.Add(time.Hour), "desc")
	if err := database.NewExperimentRepository(db).CreateExperiment(exp); err != nil {
		t.Fatalf("Failed to create experiment: %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
