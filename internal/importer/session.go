package importer

import (
	"fmt"

	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/models"
)

// Session describes one complete import: an experiment plus the source
// folders for each recording channel. Any folder may be left empty.
type Session struct {
	Experiment models.Experiment
	TabularDir string
	LogDir     string
	NVRDir     string
	CameraDir  string
	Policy     Policy
}

// SessionResult aggregates the per-importer results of one session.
type SessionResult struct {
	Tabular *Result
	Logs    *Result
	Videos  *Result
}

// Run creates the experiment and executes the three importers in a
// fixed order: tabular, logs, videos. Each importer completes before
// the next starts; there is no cross-importer ordering beyond that.
// A duplicate experiment ID or a store failure aborts the session.
func (s *Session) Run(db *database.DB) (*SessionResult, error) {
	repo := database.NewExperimentRepository(db)
	if err := repo.CreateExperiment(&s.Experiment); err != nil {
		return nil, fmt.Errorf("failed to create experiment: %w", err)
	}

	result := &SessionResult{}
	var err error

	if result.Tabular, err = ImportTabular(db, s.TabularDir, s.Experiment.ID, s.Policy); err != nil {
		return result, fmt.Errorf("tabular import failed: %w", err)
	}
	if result.Logs, err = ImportLogs(db, s.LogDir, s.Experiment.ID, s.Policy); err != nil {
		return result, fmt.Errorf("log import failed: %w", err)
	}
	if result.Videos, err = ImportVideos(db, s.NVRDir, s.CameraDir, s.Experiment.ID); err != nil {
		return result, fmt.Errorf("video import failed: %w", err)
	}

	return result, nil
}
