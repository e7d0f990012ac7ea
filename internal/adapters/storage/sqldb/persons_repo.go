package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"contact-manager/internal/domain/countries"
	"contact-manager/internal/domain/persons"
)

const dateLayout = "2006-01-02"

type PersonsRepo struct {
	db *DB
}

func NewPersonsRepo(db *DB) *PersonsRepo {
	return &PersonsRepo{db: db}
}

func (r *PersonsRepo) Add(ctx context.Context, p persons.Person) error {
	tin := p.TIN
	if tin == "" {
		tin = persons.DefaultTIN
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO persons (
			id, name, email, date_of_birth, gender,
			country_id, address, receive_news_letters,
			tax_identification_number
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Email,
		toNullDate(p.DateOfBirth),
		p.Gender,
		toNullString(p.CountryID),
		p.Address,
		p.ReceiveNewsLetters,
		tin,
	)
	return err
}

func (r *PersonsRepo) Update(ctx context.Context, p persons.Person) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE persons
		SET
			name = $2,
			email = $3,
			date_of_birth = $4,
			gender = $5,
			country_id = $6,
			address = $7,
			receive_news_letters = $8,
			tax_identification_number = $9
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Email,
		toNullDate(p.DateOfBirth),
		p.Gender,
		toNullString(p.CountryID),
		p.Address,
		p.ReceiveNewsLetters,
		p.TIN,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return persons.ErrNotFound
	}
	return nil
}

func (r *PersonsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PersonsRepo) GetByID(ctx context.Context, id string) (persons.Person, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return persons.Person{}, persons.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, r.selectPersons()+` WHERE p.id = $1`, id)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persons.Person{}, persons.ErrNotFound
		}
		return persons.Person{}, err
	}
	return p, nil
}

func (r *PersonsRepo) GetAll(ctx context.Context) ([]persons.Person, error) {
	rows, err := r.db.QueryContext(ctx, r.selectPersons()+` ORDER BY p.name ASC, p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]persons.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LEFT JOIN: el país viene cargado, o nil si country_id es NULL o no existe.
func (r *PersonsRepo) selectPersons() string {
	return `
		SELECT
			p.id, p.name, p.email, ` + r.db.dobColumn("p.date_of_birth") + `,
			p.gender, p.country_id, p.address, p.receive_news_letters,
			p.tax_identification_number,
			c.id, c.name
		FROM persons p
		LEFT JOIN countries c ON c.id = p.country_id`
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(s scanner) (persons.Person, error) {
	var (
		p         persons.Person
		dob       sql.NullString
		countryID sql.NullString
		cID       sql.NullString
		cName     sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&dob,
		&p.Gender,
		&countryID,
		&p.Address,
		&p.ReceiveNewsLetters,
		&p.TIN,
		&cID,
		&cName,
	); err != nil {
		return persons.Person{}, err
	}

	if dob.Valid && dob.String != "" {
		t, err := time.Parse(dateLayout, dob.String)
		if err != nil {
			return persons.Person{}, fmt.Errorf("person %s: date_of_birth %q: %w", p.ID, dob.String, err)
		}
		p.DateOfBirth = &t
	}
	p.CountryID = countryID.String
	if cID.Valid {
		p.Country = &countries.Country{ID: cID.String, Name: cName.String}
	}
	return p, nil
}

// date_of_birth viaja como texto YYYY-MM-DD; Postgres lo castea a DATE.
func toNullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
