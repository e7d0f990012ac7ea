package main

import (
	"errors"
	"fmt"
	"os"

	"contact-manager/internal/adapters/storage/sqldb"
	"contact-manager/internal/domain/countries"

	"github.com/spf13/cobra"
)

var importCountriesCmd = &cobra.Command{
	Use:   "import-countries <file.xlsx>",
	Short: "Bulk insert countries from the \"Countries\" sheet of an xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := countries.CheckExcelFileName(path); err != nil {
			return err
		}

		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.Database.Driver == "" {
			return errors.New("import-countries needs a database: set DB_DRIVER and DB_DSN")
		}

		db, err := openDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		n, err := countries.NewService(sqldb.NewCountriesRepo(db)).UploadFromExcelFile(cmd.Context(), f)
		if err != nil {
			return err
		}

		log.Info("countries imported", map[string]any{"file": path, "inserted": n})
		fmt.Fprintf(cmd.OutOrStdout(), "%d Countries Upload\n", n)
		return nil
	},
}
