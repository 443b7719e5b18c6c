package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/devimpact/impactboard/internal/fetcher"
	"github.com/devimpact/impactboard/pkg/config"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	github := config.AppConfig.GitHub
	f := fetcher.New(github.Token, github.Repo)

	log.Printf("Fetching merged PRs for %s (last %d days, limit %d)",
		f.Repo(), github.FetchDays, github.FetchLimit)

	snapshot, err := f.FetchSnapshot(context.Background(), github.FetchDays, github.FetchLimit)
	if err != nil {
		log.Fatalf("Failed to fetch snapshot: %v", err)
	}

	log.Printf("Fetched %d merged PRs from %d contributors", len(snapshot.PRs), len(snapshot.Contributors))

	path := config.AppConfig.Snapshot.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("Failed to create snapshot directory: %v", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	log.Printf("Snapshot saved to %s", path)
}
