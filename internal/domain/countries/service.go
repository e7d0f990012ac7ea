package countries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNilRequest    = errors.New("request is required")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("country not found")
	ErrDuplicateName = errors.New("given country name already exists")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func (s *Service) AddCountry(ctx context.Context, req *CountryAddRequest) (CountryResponse, error) {
	if req == nil {
		return CountryResponse{}, ErrNilRequest
	}
	if strings.TrimSpace(req.Name) == "" {
		return CountryResponse{}, fmt.Errorf("%w: country name can't be blank", ErrInvalidInput)
	}

	// unicidad case-sensitive, antes del insert
	_, err := s.repo.GetByName(ctx, req.Name)
	switch {
	case err == nil:
		return CountryResponse{}, ErrDuplicateName
	case !errors.Is(err, ErrNotFound):
		return CountryResponse{}, err
	}

	c := req.ToCountry()
	c.ID = s.newID()

	if err := s.repo.Add(ctx, c); err != nil {
		return CountryResponse{}, err
	}
	return c.ToCountryResponse(), nil
}

func (s *Service) GetAllCountries(ctx context.Context) ([]CountryResponse, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CountryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, c.ToCountryResponse())
	}
	return out, nil
}

// GetCountryByCountryID devuelve nil (sin error) si el id es vacío o no existe.
func (s *Service) GetCountryByCountryID(ctx context.Context, id string) (*CountryResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := c.ToCountryResponse()
	return &resp, nil
}
