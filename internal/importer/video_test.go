package importer

import (
	"strings"
	"testing"

	"github.com/qinglab/replay/internal/database"
)

func TestImportVideos_DurationEstimates(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	nvrDir := t.TempDir()
	camDir := t.TempDir()
	writeFile(t, nvrDir, "front.mp4", strings.Repeat("x", 3_500_000))
	writeFile(t, camDir, "burst.avi", strings.Repeat("x", 5_000_000))

	result, err := ImportVideos(db, nvrDir, camDir, "E1")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.FilesProcessed != 2 {
		t.Fatalf("Expected 2 files registered, got %d", result.FilesProcessed)
	}

	records, err := database.NewExperimentRepository(db).VideoRecords("E1")
	if err != nil {
		t.Fatalf("Failed to query video records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 video records, got %d", len(records))
	}

	for _, rec := range records {
		switch rec.DeviceID {
		case DeviceNVR:
			// 3.5 MB at ~1 MB/s, integer division.
			if rec.EstimatedDuration != 3 {
				t.Errorf("NVR estimate: expected 3s, got %ds", rec.EstimatedDuration)
			}
			if rec.FileSize != 3_500_000 {
				t.Errorf("NVR file size: expected 3500000, got %d", rec.FileSize)
			}
		case DeviceHighSpeedCamera:
			// 5 MB at ~2 MB/s.
			if rec.EstimatedDuration != 2 {
				t.Errorf("Camera estimate: expected 2s, got %ds", rec.EstimatedDuration)
			}
		default:
			t.Errorf("Unexpected device ID: %s", rec.DeviceID)
		}
	}
}

func TestEstimateDuration_DivisorsDiffer(t *testing.T) {
	const size = 10_000_000
	nvr := EstimateDuration(DeviceNVR, size)
	cam := EstimateDuration(DeviceHighSpeedCamera, size)

	if nvr != 10 || cam != 5 {
		t.Errorf("Expected 10s NVR / 5s camera for %d bytes, got %d / %d", size, nvr, cam)
	}
	if nvr == cam {
		t.Error("Device categories must use different divisors")
	}
}

func TestImportVideos_MissingFolders(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	result, err := ImportVideos(db, "/no/such/nvr", "", "E1")
	if err != nil {
		t.Fatalf("Missing folders must not fail: %v", err)
	}
	if result.FilesProcessed != 0 {
		t.Errorf("Expected zero files, got %d", result.FilesProcessed)
	}
}

func TestImportVideos_IgnoresNonVideoFiles(t *testing.T) {
	db := setupStore(t)
	createExperiment(t, db, "E1")

	nvrDir := t.TempDir()
	writeFile(t, nvrDir, "front.mp4", strings.Repeat("x", 1_000_000))
	writeFile(t, nvrDir, "notes.txt", "not a video")

	result, err := ImportVideos(db, nvrDir, "", "E1")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.FilesProcessed != 1 {
		t.Errorf("Expected 1 file registered, got %d", result.FilesProcessed)
	}
}
