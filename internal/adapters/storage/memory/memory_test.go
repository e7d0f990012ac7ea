package memory

import (
	"context"
	"testing"

	"contact-manager/internal/domain/countries"
	"contact-manager/internal/domain/persons"
)

func TestCountryRepo_InsertionOrderAndLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewCountryRepo()

	for _, c := range []countries.Country{{ID: "2", Name: "Japan"}, {ID: "1", Name: "Brazil"}} {
		if err := repo.Add(ctx, c); err != nil {
			t.Fatalf("add %s: %v", c.Name, err)
		}
	}
	if err := repo.Add(ctx, countries.Country{ID: "1", Name: "Dup"}); err == nil {
		t.Fatalf("expected error on duplicate id")
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Japan" || all[1].Name != "Brazil" {
		t.Fatalf("unexpected order: %+v", all)
	}

	if _, err := repo.GetByName(ctx, "brazil"); err != countries.ErrNotFound {
		t.Fatalf("expected case-sensitive miss, got %v", err)
	}
	if c, err := repo.GetByName(ctx, "Brazil"); err != nil || c.ID != "1" {
		t.Fatalf("expected Brazil, got %+v %v", c, err)
	}
	if _, err := repo.GetByID(ctx, "nope"); err != countries.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPersonRepo_EagerLoadsCountry(t *testing.T) {
	ctx := context.Background()
	cs := NewCountryRepo()
	_ = cs.Add(ctx, countries.Country{ID: "c1", Name: "Chile"})
	repo := NewPersonRepo(cs)

	if err := repo.Add(ctx, persons.Person{ID: "p1", Name: "Cláudio", CountryID: "c1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, persons.Person{ID: "p2", Name: "Lost", CountryID: "gone"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Country == nil || p.Country.Name != "Chile" {
		t.Fatalf("expected Chile, got %+v", p.Country)
	}
	if p.TIN != persons.DefaultTIN {
		t.Fatalf("expected default TIN, got %q", p.TIN)
	}

	p, _ = repo.GetByID(ctx, "p2")
	if p.Country != nil {
		t.Fatalf("dangling country id should load nil, got %+v", p.Country)
	}
}

func TestPersonRepo_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepo(NewCountryRepo())

	if err := repo.Update(ctx, persons.Person{ID: "x"}); err != persons.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_ = repo.Add(ctx, persons.Person{ID: "p1", Name: "Yeti"})
	if err := repo.Update(ctx, persons.Person{ID: "p1", Name: "Yeti 2"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p, _ := repo.GetByID(ctx, "p1")
	if p.Name != "Yeti 2" {
		t.Fatalf("update not applied: %+v", p)
	}

	if ok, err := repo.Delete(ctx, "p1"); err != nil || !ok {
		t.Fatalf("first delete: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Delete(ctx, "p1"); err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
	all, _ := repo.GetAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty repo, got %d", len(all))
	}
}
