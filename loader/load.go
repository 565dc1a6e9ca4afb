package loader

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how a Dataset is written.
type Options struct {
	BatchSize int
	// Transactional wraps the whole load in one transaction. When false each
	// batch commits on its own and a failure leaves the earlier batches in place.
	Transactional bool
}

// DefaultOptions returns a 500 row batch size and an all-or-nothing load.
func DefaultOptions() Options {
	return Options{BatchSize: 500, Transactional: true}
}

// Result counts what a load read and what it actually inserted. Rows that
// already existed are counted as seen but not inserted.
type Result struct {
	BanksSeen        int
	BanksInserted    int64
	BranchesSeen     int
	BranchesInserted int64
}

// LoadFile reads path and loads it into db. A missing file returns an error
// wrapping ErrSourceNotFound and touches nothing.
func LoadFile(ctx context.Context, db *gorm.DB, path string, opts Options) (Result, error) {
	log.Printf("Loading data from %s...", path)

	ds, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	log.Printf("Read %d rows: %d banks, %d branches (%d duplicate ifsc rows skipped)",
		ds.Rows, len(ds.Banks), len(ds.Branches), ds.DuplicateBranches)

	res, err := Load(ctx, db, ds, opts)
	if err != nil {
		return res, err
	}

	log.Printf("=== Load Complete === banks inserted: %d/%d, branches inserted: %d/%d",
		res.BanksInserted, res.BanksSeen, res.BranchesInserted, res.BranchesSeen)
	return res, nil
}

// Load inserts banks and then branches. Every insert ignores primary key
// conflicts, so loading the same data twice changes nothing.
func Load(ctx context.Context, db *gorm.DB, ds *Dataset, opts Options) (Result, error) {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultOptions().BatchSize
	}

	res := Result{BanksSeen: len(ds.Banks), BranchesSeen: len(ds.Branches)}
	run := func(tx *gorm.DB) error {
		n, err := insertIgnore(tx, ds.Banks, opts.BatchSize)
		res.BanksInserted = n
		if err != nil {
			return fmt.Errorf("inserting banks: %w", err)
		}

		n, err = insertIgnore(tx, ds.Branches, opts.BatchSize)
		res.BranchesInserted = n
		if err != nil {
			return fmt.Errorf("inserting branches: %w", err)
		}
		return nil
	}

	db = db.WithContext(ctx)
	if !opts.Transactional {
		return res, run(db)
	}

	if err := db.Transaction(run); err != nil {
		return Result{BanksSeen: res.BanksSeen, BranchesSeen: res.BranchesSeen}, err
	}
	return res, nil
}

func insertIgnore[T any](tx *gorm.DB, rows []T, batchSize int) (int64, error) {
	var inserted int64
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		batch := rows[start:end]
		result := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&batch)
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += result.RowsAffected
	}
	return inserted, nil
}
