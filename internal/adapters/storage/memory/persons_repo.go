package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"contact-manager/internal/domain/countries"
	"contact-manager/internal/domain/persons"
)

type personRepo struct {
	mu        sync.RWMutex
	byID      map[string]persons.Person
	order     []string
	countries countries.Repository
}

// NewPersonRepo resuelve Person.Country contra countries en cada lectura.
func NewPersonRepo(cs countries.Repository) persons.Repository {
	return &personRepo{
		byID:      make(map[string]persons.Person),
		countries: cs,
	}
}

func (r *personRepo) Add(ctx context.Context, p persons.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("person id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("person already exists")
	}
	if p.TIN == "" {
		p.TIN = persons.DefaultTIN
	}
	p.Country = nil
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *personRepo) GetAll(ctx context.Context) ([]persons.Person, error) {
	r.mu.RLock()
	items := make([]persons.Person, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.byID[id])
	}
	r.mu.RUnlock()

	for i := range items {
		if err := r.loadCountry(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *personRepo) GetByID(ctx context.Context, id string) (persons.Person, error) {
	r.mu.RLock()
	p, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return persons.Person{}, persons.ErrNotFound
	}
	if err := r.loadCountry(ctx, &p); err != nil {
		return persons.Person{}, err
	}
	return p, nil
}

func (r *personRepo) Update(ctx context.Context, p persons.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return persons.ErrNotFound
	}
	p.Country = nil
	r.byID[p.ID] = p
	return nil
}

func (r *personRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}

// loadCountry: país inexistente => Country nil, no error.
func (r *personRepo) loadCountry(ctx context.Context, p *persons.Person) error {
	p.Country = nil
	if p.CountryID == "" || r.countries == nil {
		return nil
	}
	c, err := r.countries.GetByID(ctx, p.CountryID)
	if err != nil {
		if errors.Is(err, countries.ErrNotFound) {
			return nil
		}
		return err
	}
	p.Country = &c
	return nil
}
