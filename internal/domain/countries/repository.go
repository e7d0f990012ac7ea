package countries

import "context"

// Repository: GetByID / GetByName devuelven ErrNotFound si no hay match.
type Repository interface {
	Add(ctx context.Context, c Country) error
	GetAll(ctx context.Context) ([]Country, error)
	GetByID(ctx context.Context, id string) (Country, error)
	GetByName(ctx context.Context, name string) (Country, error)
}
