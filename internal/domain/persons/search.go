package persons

import (
	"strings"
)

// Field identifica una columna de PersonResponse para búsqueda u orden.
// Los valores coinciden con los que llegan por query string (searchBy / sortBy).
type Field string

const (
	FieldName               Field = "Name"
	FieldEmail              Field = "Email"
	FieldDateOfBirth        Field = "DateOfBirth"
	FieldAge                Field = "Age"
	FieldGender             Field = "Gender"
	FieldCountryID          Field = "CountryId"
	FieldCountry            Field = "Country"
	FieldAddress            Field = "Address"
	FieldReceiveNewsLetters Field = "ReceiveNewsLetters"
)

// DateOfBirthSearchLayout es "dd MMMM yyyy".
const DateOfBirthSearchLayout = "02 January 2006"

// searchAccessors: valor textual de cada campo buscable. CountryId busca por nombre de país.
var searchAccessors = map[Field]func(PersonResponse) string{
	FieldName:  func(p PersonResponse) string { return p.Name },
	FieldEmail: func(p PersonResponse) string { return p.Email },
	FieldDateOfBirth: func(p PersonResponse) string {
		if p.DateOfBirth == nil {
			return ""
		}
		return p.DateOfBirth.Format(DateOfBirthSearchLayout)
	},
	FieldGender:    func(p PersonResponse) string { return p.Gender },
	FieldCountryID: func(p PersonResponse) string { return p.Country },
	FieldAddress:   func(p PersonResponse) string { return p.Address },
}

// SearchFieldOption es una entrada del selector de búsqueda de la vista.
type SearchFieldOption struct {
	Field Field
	Label string
}

var SearchFields = []SearchFieldOption{
	{FieldName, "Person Name"},
	{FieldEmail, "Email"},
	{FieldDateOfBirth, "Date of Birth"},
	{FieldGender, "Gender"},
	{FieldCountryID, "Country"},
	{FieldAddress, "Address"},
}

func IsSearchField(f Field) bool {
	_, ok := searchAccessors[f]
	return ok
}

// FilterPersons aplica búsqueda por substring case-insensitive sobre el campo elegido.
// Valores vacíos siempre matchean. Campo o texto vacío, o campo desconocido => lista completa.
func FilterPersons(all []PersonResponse, searchBy Field, searchString string) []PersonResponse {
	if searchBy == "" || searchString == "" {
		return all
	}
	get, ok := searchAccessors[searchBy]
	if !ok {
		return all
	}

	needle := strings.ToLower(searchString)
	out := make([]PersonResponse, 0, len(all))
	for _, p := range all {
		v := get(p)
		if v == "" || strings.Contains(strings.ToLower(v), needle) {
			out = append(out, p)
		}
	}
	return out
}
