package main

import (
	"bankapi/config"
	"bankapi/database"
	"bankapi/loader"
	"bankapi/store"
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newImportCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newImportCommand() *cobra.Command {
	var (
		file             string
		batchSize        int
		nonTransactional bool
	)

	cmd := &cobra.Command{
		Use:   "importBranches",
		Short: "Load a bank branch CSV into the configured database",
		Long: "Creates the banks and branches tables if needed and inserts every row of the CSV.\n" +
			"Rows whose primary key already exists are left unchanged.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if !cmd.Flags().Changed("file") {
				file = cfg.CSVFile
			}
			if !cmd.Flags().Changed("batch-size") {
				batchSize = cfg.LoadBatchSize
			}

			db := database.ConnectDb(cfg)
			defer database.Close(db)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			opts := loader.Options{BatchSize: batchSize, Transactional: !nonTransactional}
			if _, err := loader.LoadFile(ctx, db, file, opts); err != nil {
				return err
			}

			banks, branches, err := store.New(db).Counts(ctx)
			if err != nil {
				return err
			}
			log.Printf("Total in database: %d banks, %d branches", banks, branches)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "bank_branches.csv", "path to the source CSV (default from CSV_FILE)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 500, "rows per INSERT statement (default from LOAD_BATCH_SIZE)")
	cmd.Flags().BoolVar(&nonTransactional, "non-transactional", false, "commit each batch separately instead of one transaction")

	return cmd
}
