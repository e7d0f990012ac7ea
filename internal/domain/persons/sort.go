package persons

import (
	"cmp"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortASC  SortOrder = "ASC"
	SortDESC SortOrder = "DESC"
)

// ParseSortOrder es permisivo: cualquier cosa que no sea DESC es ASC.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDESC)) {
		return SortDESC
	}
	return SortASC
}

func (o SortOrder) Toggle() SortOrder {
	if o == SortDESC {
		return SortASC
	}
	return SortDESC
}

type comparator func(a, b PersonResponse) int

var sortComparators = map[Field]comparator{
	FieldName:    byString(func(p PersonResponse) string { return p.Name }),
	FieldEmail:   byString(func(p PersonResponse) string { return p.Email }),
	FieldGender:  byString(func(p PersonResponse) string { return p.Gender }),
	FieldCountry: byString(func(p PersonResponse) string { return p.Country }),
	FieldAddress: byString(func(p PersonResponse) string { return p.Address }),
	FieldDateOfBirth: func(a, b PersonResponse) int {
		switch {
		case a.DateOfBirth == nil && b.DateOfBirth == nil:
			return 0
		case a.DateOfBirth == nil:
			return -1
		case b.DateOfBirth == nil:
			return 1
		}
		return a.DateOfBirth.Compare(*b.DateOfBirth)
	},
	FieldAge: func(a, b PersonResponse) int {
		switch {
		case a.Age == nil && b.Age == nil:
			return 0
		case a.Age == nil:
			return -1
		case b.Age == nil:
			return 1
		}
		return cmp.Compare(*a.Age, *b.Age)
	},
	FieldReceiveNewsLetters: func(a, b PersonResponse) int {
		return cmp.Compare(boolRank(a.ReceiveNewsLetters), boolRank(b.ReceiveNewsLetters))
	},
}

// SortColumn es una columna ordenable de la tabla de personas.
type SortColumn struct {
	Field Field
	Label string
}

var SortColumns = []SortColumn{
	{FieldName, "Person Name"},
	{FieldEmail, "Email"},
	{FieldDateOfBirth, "Date of Birth"},
	{FieldAge, "Age"},
	{FieldGender, "Gender"},
	{FieldCountry, "Country"},
	{FieldAddress, "Address"},
	{FieldReceiveNewsLetters, "Receive News Letters"},
}

func IsSortField(f Field) bool {
	_, ok := sortComparators[f]
	return ok
}

// SortPersons ordena de forma estable una copia de all. sortBy vacío o desconocido => all tal cual.
func SortPersons(all []PersonResponse, sortBy Field, order SortOrder) []PersonResponse {
	if sortBy == "" {
		return all
	}
	compare, ok := sortComparators[sortBy]
	if !ok {
		return all
	}
	if order == SortDESC {
		asc := compare
		compare = func(a, b PersonResponse) int { return asc(b, a) }
	}

	out := slices.Clone(all)
	slices.SortStableFunc(out, compare)
	return out
}

// ordinal case-insensitive: se compara la forma en mayúsculas
func byString(get func(PersonResponse) string) comparator {
	return func(a, b PersonResponse) int {
		return strings.Compare(strings.ToUpper(get(a)), strings.ToUpper(get(b)))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
