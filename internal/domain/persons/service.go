package persons

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNilRequest   = errors.New("request is required")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("given person id doesn't exist")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) AddPerson(ctx context.Context, req *PersonAddRequest) (PersonResponse, error) {
	if req == nil {
		return PersonResponse{}, ErrNilRequest
	}
	in := *req
	normalizeAdd(&in)
	if err := validateRequest(&in); err != nil {
		return PersonResponse{}, err
	}

	p := in.ToPerson()
	p.ID = s.newID()
	if p.TIN == "" {
		p.TIN = DefaultTIN
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return PersonResponse{}, err
	}

	// releer para que la respuesta traiga el país resuelto
	stored, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return PersonResponse{}, err
	}
	return stored.ToPersonResponse(s.now()), nil
}

func (s *Service) GetAllPersons(ctx context.Context) ([]PersonResponse, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]PersonResponse, 0, len(items))
	for _, p := range items {
		out = append(out, p.ToPersonResponse(now))
	}
	return out, nil
}

// GetPersonByPersonID devuelve nil (sin error) si el id es vacío o no existe.
func (s *Service) GetPersonByPersonID(ctx context.Context, id string) (*PersonResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := p.ToPersonResponse(s.now())
	return &resp, nil
}

func (s *Service) GetFilteredPersons(ctx context.Context, searchBy Field, searchString string) ([]PersonResponse, error) {
	all, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPersons(all, searchBy, searchString), nil
}

func (s *Service) GetSortedPersons(all []PersonResponse, sortBy Field, order SortOrder) []PersonResponse {
	return SortPersons(all, sortBy, order)
}

// UpdatePerson reemplaza todos los campos mutables. Last write wins.
func (s *Service) UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (PersonResponse, error) {
	if req == nil {
		return PersonResponse{}, ErrNilRequest
	}
	in := *req
	normalizeUpdate(&in)
	if err := validateRequest(&in); err != nil {
		return PersonResponse{}, err
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return PersonResponse{}, err
	}

	p := in.ToPerson()
	if p.TIN == "" {
		p.TIN = current.TIN
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return PersonResponse{}, err
	}

	stored, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return PersonResponse{}, err
	}
	return stored.ToPersonResponse(s.now()), nil
}

// DeletePerson devuelve false si el id no existe (no es error).
func (s *Service) DeletePerson(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrNilRequest
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func normalizeAdd(req *PersonAddRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Gender = Gender(strings.TrimSpace(string(req.Gender)))
	req.CountryID = strings.TrimSpace(req.CountryID)
	req.Address = strings.TrimSpace(req.Address)
	req.TIN = strings.TrimSpace(req.TIN)
}

func normalizeUpdate(req *PersonUpdateRequest) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Gender = Gender(strings.TrimSpace(string(req.Gender)))
	req.CountryID = strings.TrimSpace(req.CountryID)
	req.Address = strings.TrimSpace(req.Address)
	req.TIN = strings.TrimSpace(req.TIN)
}
