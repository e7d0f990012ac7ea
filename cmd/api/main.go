//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

// @title Contacts Manager API
// @version 1.0
// @description Persons and countries: CRUD, search, sort, exports and xlsx import.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"contact-manager/internal/adapters/storage/sqldb"
	"contact-manager/internal/config"
	"contact-manager/internal/platform/logger"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd sin subcomando equivale a "serve"
var rootCmd = &cobra.Command{
	Use:           "contact-manager",
	Short:         "Contacts manager web application",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (env vars override it)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCountriesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap carga config y logger, comunes a todos los subcomandos.
func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// openDB devuelve nil (sin error) cuando no hay driver configurado.
func openDB(ctx context.Context, cfg *config.Config, log logger.Logger) (*sqldb.DB, error) {
	if cfg.Database.Driver == "" {
		return nil, nil
	}

	db, err := sqldb.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Database.Driver, err)
	}
	if err := sqldb.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("database ready", map[string]any{"driver": cfg.Database.Driver})
	return db, nil
}
