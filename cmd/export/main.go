package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/qinglab/replay/internal/config"
	"github.com/qinglab/replay/internal/database"
	"github.com/qinglab/replay/internal/export"
	"github.com/qinglab/replay/internal/models"
	"github.com/qinglab/replay/internal/storage"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		expID      = flag.String("id", "", "Experiment ID (required)")
		types      = flag.String("types", "", "Comma-separated sensor types to export")
		cameras    = flag.String("cameras", "", "Comma-separated camera IDs to plan video export for")
		start      = flag.String("start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
		end        = flag.String("end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
		out        = flag.String("out", "./export", "Destination directory")
		dataFile   = flag.String("file", "data.csv", "Data export file name inside the destination directory")
	)
	flag.Parse()

	godotenv.Load()

	if *expID == "" {
		log.Fatal("Please provide an experiment ID with -id")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer db.Close()

	destDir, err := storage.NewExportDir(*out)
	if err != nil {
		log.Fatal("Failed to prepare destination:", err)
	}

	tr := models.TimeRange{Start: *start, End: *end}

	if *types != "" {
		destPath, err := destDir.Resolve(*dataFile)
		if err != nil {
			log.Fatal("Invalid data file name:", err)
		}
		rows, err := export.Data(db, *expID, splitList(*types), tr, cfg.Export.Options, destPath)
		if err != nil {
			log.Fatal("Data export failed:", err)
		}
		fmt.Printf("Wrote %d rows to %s\n", rows, destPath)
	}

	if *cameras != "" {
		plans, err := export.PlanVideo(db, *expID, splitList(*cameras), cfg.Export.VideoFormat, destDir)
		if err != nil {
			log.Fatal("Video export planning failed:", err)
		}
		for _, plan := range plans {
			fmt.Printf("Planned %s from %d source files\n", plan.DestPath, len(plan.Sources))
		}
	}

	if *types == "" && *cameras == "" {
		log.Fatal("Nothing to export: provide -types and/or -cameras")
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
