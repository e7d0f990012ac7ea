package persons

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func samplePersons() []PersonResponse {
	return []PersonResponse{
		{ID: "1", Name: "Yeti", Email: "yeti@gmail.com", DateOfBirth: date(2002, time.May, 28), Age: intPtr(22), Gender: "Male", Country: "Japan", Address: "Xique Xique - BA", ReceiveNewsLetters: true},
		{ID: "2", Name: "maria", Email: "maria@gmail.com", DateOfBirth: date(1990, time.January, 2), Age: intPtr(34), Gender: "Female", Country: "Argentina", Address: "São Paulo"},
		{ID: "3", Name: "Cláudio", Email: "craudio@gmail.com", Gender: "Male", Country: "", Address: "Belém", ReceiveNewsLetters: true},
		{ID: "4", Name: "Ronaldo", Email: "ronaldo@yahoo.com", DateOfBirth: date(1985, time.March, 15), Age: intPtr(39), Gender: "Other", Country: "Brazil", Address: "Jussiape"},
	}
}

func ids(items []PersonResponse) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPersons_EmptyArgsReturnAll(t *testing.T) {
	all := samplePersons()

	if diff := cmp.Diff(ids(all), ids(FilterPersons(all, FieldName, ""))); diff != "" {
		t.Fatalf("empty search string (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids(all), ids(FilterPersons(all, "", "yeti"))); diff != "" {
		t.Fatalf("empty field (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids(all), ids(FilterPersons(all, "Shoe", "yeti"))); diff != "" {
		t.Fatalf("unknown field (-want +got):\n%s", diff)
	}
}

func TestFilterPersons_ByField(t *testing.T) {
	all := samplePersons()

	cases := []struct {
		field Field
		text  string
		want  []string
	}{
		{FieldName, "MAR", []string{"2"}},
		{FieldEmail, "gmail", []string{"1", "2", "3"}},
		// 3 no tiene fecha: los vacíos siempre matchean
		{FieldDateOfBirth, "may", []string{"1", "3"}},
		{FieldDateOfBirth, "02 January 1990", []string{"2", "3"}},
		{FieldGender, "male", []string{"1", "2", "3"}},
		{FieldCountryID, "bra", []string{"3", "4"}},
		{FieldAddress, "são", []string{"2"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.field)+"/"+tc.text, func(t *testing.T) {
			got := ids(FilterPersons(all, tc.field, tc.text))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsSearchField(t *testing.T) {
	for _, f := range SearchFields {
		if !IsSearchField(f.Field) {
			t.Fatalf("%s should be searchable", f.Field)
		}
	}
	if IsSearchField(FieldAge) {
		t.Fatalf("Age is not searchable")
	}
}
