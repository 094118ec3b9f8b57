package main

import (
	"context"
	"log"
	"time"

	"kizuna/internal/config"
	"kizuna/internal/database"
	"kizuna/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	switch cfg.Storage.Driver {
	case config.DriverRedis:
		log.Printf("session cleanup skipped: redis entries expire after SESSION_TTL=%s", cfg.Session.TTL)
		return
	case config.DriverMemory:
		log.Println("session cleanup skipped: memory storage does not outlive the server")
		return
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-cfg.Session.TTL)
	evicted, err := storage.NewSQLStore(db).EvictIdle(ctx, cutoff)
	if err != nil {
		log.Fatalf("cleanup kv_entries failed: %v", err)
	}

	log.Printf("session cleanup completed: sessions=%d cutoff=%s", evicted, cutoff.UTC().Format(time.RFC3339))
}
