package main

import (
	"errors"

	"contact-manager/internal/router"

	"github.com/spf13/cobra"
)

var seedAfterMigrate bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema (and optionally seed it)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.Database.Driver == "" {
			return errors.New("migrate needs a database: set DB_DRIVER and DB_DSN")
		}

		db, err := openDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if seedAfterMigrate {
			return router.Seed(cmd.Context(), db, cfg.Seed.Dir, log)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedAfterMigrate, "seed", false, "Insert seed data when the countries table is empty")
}
