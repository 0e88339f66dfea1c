package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/yalisommer/creature-creator/internal/config"
	"github.com/yalisommer/creature-creator/internal/models"
	"github.com/yalisommer/creature-creator/internal/store"
)

// Base creatures every install starts from. Combinations add to these
// over time; the seeder never touches combinations.json.
var baseCreatures = []models.Creature{
	{ID: "wolf", Name: "Wolf"},
	{ID: "shark", Name: "Shark"},
	{ID: "eagle", Name: "Eagle"},
	{ID: "bear", Name: "Bear"},
	{ID: "serpent", Name: "Serpent"},
	{ID: "mantis", Name: "Mantis"},
}

func main() {
	force := flag.Bool("force", false, "overwrite an existing creature catalog")
	flag.Parse()

	config.LoadConfig()

	dataDir := config.AppConfig.DataDir
	catalogPath := filepath.Join(dataDir, "creatures.json")

	if _, err := os.Stat(catalogPath); err == nil && !*force {
		log.Printf("✅ Creature catalog already exists at %s (use -force to overwrite)", catalogPath)
		return
	}

	log.Printf("🌱 Seeding %d base creatures into %s...", len(baseCreatures), catalogPath)

	catalogStore := store.New(dataDir)
	if err := catalogStore.WriteCreatures(&models.CreatureCatalog{Creatures: baseCreatures}); err != nil {
		log.Fatalf("❌ Failed to write creature catalog: %v", err)
	}

	if err := os.MkdirAll(config.AppConfig.ImagesDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create image directory: %v", err)
	}

	log.Println("✅ Seed complete")
}
