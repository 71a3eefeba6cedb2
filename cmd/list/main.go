package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/qinglab/replay/internal/config"
	"github.com/qinglab/replay/internal/database"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		expID      = flag.String("id", "", "Show details for one experiment")
	)
	flag.Parse()

	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer db.Close()

	repo := database.NewExperimentRepository(db)

	if *expID != "" {
		showExperiment(repo, *expID)
		return
	}

	experiments, err := repo.ListExperiments()
	if err != nil {
		log.Fatal("Failed to list experiments:", err)
	}

	if len(experiments) == 0 {
		fmt.Println("No experiments in store")
		return
	}
	for _, exp := range experiments {
		fmt.Printf("%s\t%s\t%s - %s\n", exp.ID, exp.Name, exp.StartTime, exp.EndTime)
	}
}

func showExperiment(repo *database.ExperimentRepository, id string) {
	exp, err := repo.GetExperiment(id)
	if err != nil {
		log.Fatal("Failed to get experiment:", err)
	}
	if exp == nil {
		log.Fatalf("No experiment with ID %q", id)
	}

	fmt.Printf("%s: %s (%s - %s)\n", exp.ID, exp.Name, exp.StartTime, exp.EndTime)
	if exp.Description != "" {
		fmt.Printf("  %s\n", exp.Description)
	}

	types, err := repo.ListSensorTypes(id)
	if err != nil {
		log.Fatal("Failed to list sensor types:", err)
	}
	fmt.Printf("  sensor types: %v\n", types)

	cameras, err := repo.ListCameras(id)
	if err != nil {
		log.Fatal("Failed to list cameras:", err)
	}
	fmt.Printf("  cameras: %v\n", cameras)

	videos, err := repo.VideoRecords(id)
	if err != nil {
		log.Fatal("Failed to list videos:", err)
	}
	for _, v := range videos {
		fmt.Printf("  video %s: %s (~%ds, %d bytes)\n", v.DeviceID, v.FilePath, v.EstimatedDuration, v.FileSize)
	}
}
