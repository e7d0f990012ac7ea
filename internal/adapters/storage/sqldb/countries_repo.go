package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"contact-manager/internal/domain/countries"
)

type CountriesRepo struct {
	db *DB
}

func NewCountriesRepo(db *DB) *CountriesRepo {
	return &CountriesRepo{db: db}
}

func (r *CountriesRepo) Add(ctx context.Context, c countries.Country) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO countries (id, name) VALUES ($1, $2)
	`, c.ID, c.Name)
	return err
}

func (r *CountriesRepo) GetAll(ctx context.Context) ([]countries.Country, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM countries
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]countries.Country, 0)
	for rows.Next() {
		var c countries.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CountriesRepo) GetByID(ctx context.Context, id string) (countries.Country, error) {
	return r.getOne(ctx, `SELECT id, name FROM countries WHERE id = $1`, id)
}

// GetByName compara exacto (case-sensitive en ambos motores).
func (r *CountriesRepo) GetByName(ctx context.Context, name string) (countries.Country, error) {
	return r.getOne(ctx, `SELECT id, name FROM countries WHERE name = $1 LIMIT 1`, name)
}

func (r *CountriesRepo) getOne(ctx context.Context, query, arg string) (countries.Country, error) {
	var c countries.Country
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return countries.Country{}, countries.ErrNotFound
		}
		return countries.Country{}, err
	}
	return c, nil
}
