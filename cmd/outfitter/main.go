package main

import (
	"flag"
	"log"
	"os"

	"github.com/edcd-tools/outfitter-go/internal/adapters/cli"
	"github.com/edcd-tools/outfitter-go/internal/adapters/persistence"
	"github.com/edcd-tools/outfitter-go/internal/application/backup"
	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/infrastructure/config"
	"github.com/edcd-tools/outfitter-go/internal/infrastructure/database"
)

func main() {
	configPath := flag.String("config", "", "Path to the configuration file (empty = search default paths)")
	flag.Parse()

	// Load configuration
	cfg := config.LoadConfigOrDefault(*configPath)

	// Load the module and hull catalog
	f, err := os.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	cat, err := catalog.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Connect to the database and run migrations
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Wire repositories and services
	builds := persistence.NewGormBuildRepository(db)
	comparisons := persistence.NewGormComparisonRepository(db)
	outfitService := outfit.NewService(cat)

	deps := &cli.Deps{
		Config:      cfg,
		Outfit:      outfitService,
		Builds:      builds,
		Comparisons: comparisons,
		Importer:    backup.NewImporter(cat, builds, comparisons),
		Exporter:    backup.NewExporter(builds, comparisons),
	}

	cli.Execute(deps)
}
