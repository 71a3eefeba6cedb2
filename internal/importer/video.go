package importer

import (
	"log"
	"os"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
	"github.com/qinglab/replay/internal/scanner"
)

// Device categories for video sources.
const (
	DeviceNVR             = "NVR"
	DeviceHighSpeedCamera = "HighSpeedCamera"
)

// Bytes-per-second divisors for the duration estimate. These are crude
// rules of thumb (roughly 1 MB/s for NVR footage, 2 MB/s for the much
// denser high-speed camera files); the stored duration is an estimate
// derived from file size, never a measured media duration.
const (
	nvrBytesPerSecond       = 1_000_000
	highSpeedBytesPerSecond = 2_000_000
)

// EstimateDuration returns the estimated duration in seconds for a
// video file of the given size, by device category.
func EstimateDuration(deviceID string, size int64) int64 {
	if deviceID == DeviceHighSpeedCamera {
		return size / highSpeedBytesPerSecond
	}
	return size / nvrBytesPerSecond
}

// ImportVideos registers the video files found under the NVR and
// high-speed camera folders for the given experiment. Either folder
// may be empty or missing; a missing folder contributes zero files.
// A file whose size cannot be read is logged and counted as failed.
func ImportVideos(db *database.DB, nvrFolder, cameraFolder, experimentID string) (*Result, error) {
	result := newResult()
	repo := database.NewExperimentRepository(db)

	folders := []struct {
		path     string
		deviceID string
	}{
		{nvrFolder, DeviceNVR},
		{cameraFolder, DeviceHighSpeedCamera},
	}

	for _, folder := range folders {
		if folder.path == "" {
			continue
		}
		files, err := scanner.Scan(folder.path, scanner.Video)
		if err != nil {
			return result, err
		}

		for _, path := range files {
			info, err := os.Stat(path)
			if err != nil {
				log.Printf("import %s: skipping unreadable file %s: %v", result.BatchID, path, err)
				result.FilesFailed++
				continue
			}

			rec := &models.VideoRecord{
				ExperimentID:      experimentID,
				DeviceID:          folder.deviceID,
				FilePath:          path,
				EstimatedDuration: EstimateDuration(folder.deviceID, info.Size()),
				FileSize:          info.Size(),
			}
			if err := repo.InsertVideoRecord(rec); err != nil {
				return result, err
			}
			result.FilesProcessed++
			result.RowsInserted++
		}
	}

	log.Printf("import %s: video folders: %d files registered", result.BatchID, result.FilesProcessed)
	return result, nil
}
