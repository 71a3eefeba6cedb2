package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/qinglab/replay/internal/config"
	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/importer"
	"github.com/qinglab/replay/internal/models"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		expID      = flag.String("id", "", "Experiment ID (required)")
		name       = flag.String("name", "", "Experiment name")
		start      = flag.String("start", "", "Experiment start time (YYYY-MM-DD HH:MM:SS, default now)")
		end        = flag.String("end", "", "Experiment end time (YYYY-MM-DD HH:MM:SS, default now)")
		desc       = flag.String("desc", "", "Experiment description")
		tabularDir = flag.String("tabular", "", "Folder with tabular data files")
		logDir     = flag.String("logs", "", "Folder with log files")
		nvrDir     = flag.String("nvr", "", "Folder with NVR video files")
		cameraDir  = flag.String("camera", "", "Folder with high-speed camera video files")
	)
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if *expID == "" {
		log.Fatal("Please provide an experiment ID with -id")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	startTime := parseTimeFlag(*start)
	endTime := parseTimeFlag(*end)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer db.Close()

	session := &importer.Session{
		Experiment: *models.NewExperiment(*expID, *name, startTime, endTime, *desc),
		TabularDir: *tabularDir,
		LogDir:     *logDir,
		NVRDir:     *nvrDir,
		CameraDir:  *cameraDir,
		Policy:     cfg.Import,
	}

	result, err := session.Run(db)
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	fmt.Printf("Imported experiment %s into %s\n", *expID, cfg.DBPath)
	fmt.Printf("  tabular: %d files, %d rows (%d lines skipped, %d files failed)\n",
		result.Tabular.FilesProcessed, result.Tabular.RowsInserted,
		result.Tabular.RowsSkipped, result.Tabular.FilesFailed)
	fmt.Printf("  logs:    %d files, %d rows (%d lines skipped, %d files failed)\n",
		result.Logs.FilesProcessed, result.Logs.RowsInserted,
		result.Logs.RowsSkipped, result.Logs.FilesFailed)
	fmt.Printf("  videos:  %d files registered\n", result.Videos.FilesProcessed)
}

func parseTimeFlag(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	t, err := models.ParseTime(value)
	if err != nil {
		log.Fatalf("Invalid time %q: expected format %s", value, models.TimeLayout)
	}
	return t
}
