package export

import (
	"fmt"
	"log"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
	"github.com/qinglab/replay/internal/storage"
)

// Formats accepted for video export plans.
var videoFormats = map[string]bool{
	"mp4": true,
	"avi": true,
	"mov": true,
}

// Plan names the destination file for one camera's export and lists
// the source recordings that back it. Producing playable output from
// the plan (re-encoding, trimming to the time range) is the job of an
// external video-processing tool; this engine's responsibility ends at
// the plan.
type Plan struct {
	CameraID string
	Format   string
	DestPath string
	Sources  []models.VideoRecord
}

// PlanVideo builds one export plan per selected camera, with the
// destination file named <cameraID>.<format> inside destDir. Cameras
// without recordings still get a plan, with no sources.
func PlanVideo(db *database.DB, experimentID string, cameraIDs []string, format string, destDir *storage.ExportDir) ([]Plan, error) {
	if !videoFormats[format] {
		return nil, &ExportError{Dest: destDir.Path(), Err: fmt.Errorf("unsupported video format: %q", format)}
	}

	repo := database.NewExperimentRepository(db)

	plans := make([]Plan, 0, len(cameraIDs))
	for _, cameraID := range cameraIDs {
		sources, err := repo.VideoRecordsByDevice(experimentID, cameraID)
		if err != nil {
			return nil, err
		}

		destPath, err := destDir.Resolve(fmt.Sprintf("%s.%s", cameraID, format))
		if err != nil {
			return nil, &ExportError{Dest: destDir.Path(), Err: err}
		}

		plans = append(plans, Plan{
			CameraID: cameraID,
			Format:   format,
			DestPath: destPath,
			Sources:  sources,
		})
		log.Printf("export: planned %s (%d source files)", destPath, len(sources))
	}

	return plans, nil
}
