package main

import (
	"flag"
	"fmt"
	"log"

	"word-search-solver/internal/api"
	"word-search-solver/internal/config"
)

const dropTables = `
	DROP TABLE IF EXISTS solve_runs;
	DROP TABLE IF EXISTS puzzles;
`

var sampleGrid = []string{
	"UEWRTRBHCD",
	"CXGZUWRYER",
	"ROCKSBAUCU",
	"SFKFMTYSGE",
	"YSOOUNMZIM",
	"TCGPRTIDAN",
	"HETIDAHCOP",
	"RYLMMOOLBS",
	"EERUGOSCDC",
	"ZZTKOOSCBU",
}

var sampleWords = []string{"ROCKS", "FOX", "EYE", "COP", "MOO", "KOOS", "TRUCK"}

func main() {
	configFile := flag.String("config", "wordsearch.toml", "Path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Setting up database at: %s\n", cfg.DBPath)

	db, err := api.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Drop existing tables
	log.Println("Dropping existing tables...")
	if _, err := db.Exec(dropTables); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	// Create tables
	log.Println("Creating tables...")
	if err := api.Migrate(db); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Seed puzzles
	log.Println("Seeding puzzles...")
	p, err := api.CreatePuzzle(db, "sample", sampleGrid, sampleWords)
	if err != nil {
		log.Fatalf("Failed to seed puzzles: %v", err)
	}

	log.Println("Database setup completed successfully!")
	fmt.Println("\nSample puzzle added:")
	fmt.Printf("- %s (%dx%d grid, %d words): %s\n", p.Name, len(p.Grid), len(p.Grid[0]), len(p.Words), p.Id)
}
