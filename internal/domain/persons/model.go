package persons

import (
	"math"
	"time"

	"contact-manager/internal/domain/countries"
)

// Gender define los valores admitidos para Person.Gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// DefaultTIN es el valor por defecto de la columna tax_identification_number.
const DefaultTIN = "ABCD1234"

// Person es la fila persistida. Country viene eager-loaded desde el repo
// (nil si CountryID está vacío o apunta a un país inexistente).
type Person struct {
	ID string

	Name        string
	Email       string
	DateOfBirth *time.Time
	Gender      string
	CountryID   string // "" = sin país
	Address     string

	ReceiveNewsLetters bool
	TIN                string

	Country *countries.Country
}

type PersonAddRequest struct {
	Name               string `validate:"required,max=40"`
	Email              string `validate:"required,email,max=40"`
	DateOfBirth        *time.Time
	Gender             Gender `validate:"required,oneof=Male Female Other"`
	CountryID          string `validate:"required,uuid"`
	Address            string `validate:"required,max=200"`
	ReceiveNewsLetters bool
	TIN                string `validate:"omitempty,len=8"`
}

type PersonUpdateRequest struct {
	ID                 string `validate:"required"`
	Name               string `validate:"required,max=40"`
	Email              string `validate:"required,email,max=40"`
	DateOfBirth        *time.Time
	Gender             Gender `validate:"required,oneof=Male Female Other"`
	CountryID          string `validate:"required,uuid"`
	Address            string `validate:"required,max=200"`
	ReceiveNewsLetters bool
	TIN                string `validate:"omitempty,len=8"`
}

type PersonResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             string     `json:"gender"`
	CountryID          string     `json:"country_id,omitempty"`
	Country            string     `json:"country,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
	TIN                string     `json:"tin"`
	Age                *int       `json:"age,omitempty"`
}

func (r PersonAddRequest) ToPerson() Person {
	return Person{
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             string(r.Gender),
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
		TIN:                r.TIN,
	}
}

func (r PersonUpdateRequest) ToPerson() Person {
	return Person{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             string(r.Gender),
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
		TIN:                r.TIN,
	}
}

// ToPersonResponse calcula Age respecto de now y desnormaliza el nombre del país.
func (p Person) ToPersonResponse(now time.Time) PersonResponse {
	resp := PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
		TIN:                p.TIN,
		Age:                ageAt(p.DateOfBirth, now),
	}
	if p.Country != nil {
		resp.Country = p.Country.Name
	}
	return resp
}

func (r PersonResponse) ToPersonUpdateRequest() PersonUpdateRequest {
	return PersonUpdateRequest{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             Gender(r.Gender),
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
		TIN:                r.TIN,
	}
}

func ageAt(dob *time.Time, now time.Time) *int {
	if dob == nil {
		return nil
	}
	years := int(math.Round(now.Sub(*dob).Hours() / 24 / 365.25))
	return &years
}
