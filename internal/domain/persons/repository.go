package persons

import "context"

// Repository: las lecturas traen Person.Country cargado.
// GetByID y Update devuelven ErrNotFound si el id no existe.
type Repository interface {
	Add(ctx context.Context, p Person) error
	GetAll(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id string) (Person, error)
	Update(ctx context.Context, p Person) error
	Delete(ctx context.Context, id string) (bool, error)
}
