package main

import (
	"bankapi/config"
	"bankapi/loader"
	"bankapi/store"
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

// loadDataset populates the store from the configured CSV. Load failures are
// logged and the service starts with whatever the store already holds.
func loadDataset(ctx context.Context, cfg *config.Config, db *gorm.DB) {
	opts := loader.Options{BatchSize: cfg.LoadBatchSize, Transactional: cfg.LoadTransactional}

	_, err := loader.LoadFile(ctx, db, cfg.CSVFile, opts)
	switch {
	case errors.Is(err, loader.ErrSourceNotFound):
		log.Printf("Error: %s not found. Skipping data load.", cfg.CSVFile)
	case err != nil:
		log.Printf("Error initializing database: %v", err)
	default:
		log.Println("Database initialized successfully.")
	}

	banks, branches, err := store.New(db).Counts(ctx)
	if err != nil {
		log.Printf("Failed to count rows: %v", err)
		return
	}
	log.Printf("Serving %d banks and %d branches", banks, branches)
}
