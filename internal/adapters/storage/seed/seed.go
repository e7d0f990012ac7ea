// Package seed carga los datos iniciales (países y personas) y los aplica
// sobre cualquier par de repositorios.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"contact-manager/internal/domain/countries"
	"contact-manager/internal/domain/persons"
)

//go:embed data/*.json
var embedded embed.FS

const (
	countriesFile = "countries.json"
	personsFile   = "persons.json"
	dateLayout    = "2006-01-02"
)

type countryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type personRecord struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	CountryID          string `json:"country_id"`
	Address            string `json:"address"`
	ReceiveNewsLetters bool   `json:"receive_news_letters"`
	TIN                string `json:"tin"`
}

type Data struct {
	Countries []countries.Country
	Persons   []persons.Person
}

// Load lee countries.json y persons.json de dir; dir vacío usa los embebidos.
func Load(dir string) (Data, error) {
	var fsys fs.FS
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return Data{}, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

func LoadFS(fsys fs.FS) (Data, error) {
	var cs []countryRecord
	if err := readJSON(fsys, countriesFile, &cs); err != nil {
		return Data{}, err
	}
	var ps []personRecord
	if err := readJSON(fsys, personsFile, &ps); err != nil {
		return Data{}, err
	}

	out := Data{
		Countries: make([]countries.Country, 0, len(cs)),
		Persons:   make([]persons.Person, 0, len(ps)),
	}
	for _, c := range cs {
		out.Countries = append(out.Countries, countries.Country{ID: c.ID, Name: c.Name})
	}
	for _, p := range ps {
		person, err := p.toPerson()
		if err != nil {
			return Data{}, fmt.Errorf("%s: person %s: %w", personsFile, p.ID, err)
		}
		out.Persons = append(out.Persons, person)
	}
	return out, nil
}

func (r personRecord) toPerson() (persons.Person, error) {
	p := persons.Person{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
		TIN:                r.TIN,
	}
	if r.DateOfBirth != "" {
		t, err := time.Parse(dateLayout, r.DateOfBirth)
		if err != nil {
			return persons.Person{}, err
		}
		p.DateOfBirth = &t
	}
	if p.TIN == "" {
		p.TIN = persons.DefaultTIN
	}
	return p, nil
}

// Apply inserta data solo si todavía no hay países. Devuelve false si no hizo nada.
func Apply(ctx context.Context, cs countries.Repository, ps persons.Repository, data Data) (bool, error) {
	existing, err := cs.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: list countries: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, c := range data.Countries {
		if err := cs.Add(ctx, c); err != nil {
			return false, fmt.Errorf("seed: add country %s: %w", c.Name, err)
		}
	}
	for _, p := range data.Persons {
		if err := ps.Add(ctx, p); err != nil {
			return false, fmt.Errorf("seed: add person %s: %w", p.Name, err)
		}
	}
	return true, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("seed file %s not found: %w", name, err)
		}
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
