package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

// Imports scores saved by the browser version of the game. Export them from
// the browser console with copy(localStorage.getItem("snakeScores")) and
// save the result to a file.
func main() {
	var (
		src     = flag.String("in", "snakeScores.json", "exported localStorage snakeScores value")
		envFile = flag.String("env", ".env", "settings file with SNAKE_* variables")
		dbPath  = flag.String("db", "", "score database, or a .json file (default: SNAKE_DB_PATH or "+config.DefaultDBPath+")")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	// 1. Read and parse the export
	fileContent, err := os.ReadFile(*src)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *src, err)
	}
	records, err := scores.DecodeRecords(fileContent)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *src, err)
	}

	// 2. Open the store (creates the table if the game never ran)
	store, err := scores.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open score store:", err)
	}
	defer store.Close()

	// 3. Migrate
	log.Printf("Found %d scores to migrate...", len(records))
	ctx := context.Background()
	count := 0
	for _, rec := range records {
		if err := store.Append(ctx, rec); err != nil {
			log.Printf("Failed to migrate score %d: %v", rec.Score, err)
			continue
		}
		count++
	}

	log.Printf("✅ Migration complete. %d/%d scores written to %s", count, len(records), cfg.DBPath)
}
