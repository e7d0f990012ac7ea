package sqldb

import (
	"context"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		id   TEXT PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS persons (
		id                        TEXT PRIMARY KEY,
		name                      VARCHAR(40) NOT NULL,
		email                     VARCHAR(40) NOT NULL,
		date_of_birth             DATE NULL,
		gender                    VARCHAR(10) NOT NULL,
		country_id                TEXT NULL REFERENCES countries(id),
		address                   VARCHAR(200) NOT NULL,
		receive_news_letters      BOOLEAN NOT NULL DEFAULT FALSE,
		tax_identification_number VARCHAR(8) NOT NULL DEFAULT 'ABCD1234',
		CONSTRAINT chk_tin CHECK (char_length(tax_identification_number) = 8)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_persons_country_id ON persons(country_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS persons (
		id                        TEXT PRIMARY KEY,
		name                      TEXT NOT NULL,
		email                     TEXT NOT NULL,
		date_of_birth             TEXT NULL,
		gender                    TEXT NOT NULL,
		country_id                TEXT NULL REFERENCES countries(id),
		address                   TEXT NOT NULL,
		receive_news_letters      INTEGER NOT NULL DEFAULT 0,
		tax_identification_number TEXT NOT NULL DEFAULT 'ABCD1234',
		CONSTRAINT chk_tin CHECK (length(tax_identification_number) = 8)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_persons_country_id ON persons(country_id)`,
}

// Migrate crea el esquema si no existe. Es idempotente.
func Migrate(ctx context.Context, db *DB) error {
	stmts := sqliteSchema
	if db.Driver == DriverPostgres {
		stmts = postgresSchema
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
