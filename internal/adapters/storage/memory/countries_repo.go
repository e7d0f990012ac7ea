package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"contact-manager/internal/domain/countries"
)

type countryRepo struct {
	mu    sync.RWMutex
	byID  map[string]countries.Country
	order []string // orden de inserción para GetAll
}

func NewCountryRepo() countries.Repository {
	return &countryRepo{
		byID: make(map[string]countries.Country),
	}
}

func (r *countryRepo) Add(ctx context.Context, c countries.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("country id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("country already exists")
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *countryRepo) GetAll(ctx context.Context) ([]countries.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]countries.Country, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *countryRepo) GetByID(ctx context.Context, id string) (countries.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return countries.Country{}, countries.ErrNotFound
	}
	return c, nil
}

// GetByName es match exacto (case-sensitive).
func (r *countryRepo) GetByName(ctx context.Context, name string) (countries.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if c := r.byID[id]; c.Name == name {
			return c, nil
		}
	}
	return countries.Country{}, countries.ErrNotFound
}
