package persons

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortPersons_EmptyFieldIsIdentity(t *testing.T) {
	all := samplePersons()
	for _, order := range []SortOrder{SortASC, SortDESC} {
		if diff := cmp.Diff(ids(all), ids(SortPersons(all, "", order))); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", order, diff)
		}
	}
	if diff := cmp.Diff(ids(all), ids(SortPersons(all, "Nope", SortASC))); diff != "" {
		t.Fatalf("unknown field (-want +got):\n%s", diff)
	}
}

func TestSortPersons_ByField(t *testing.T) {
	all := samplePersons()

	cases := []struct {
		field Field
		want  []string
	}{
		// case-insensitive: "maria" va entre Cláudio y Ronaldo
		{FieldName, []string{"3", "2", "4", "1"}},
		{FieldEmail, []string{"3", "2", "4", "1"}},
		// nil primero
		{FieldDateOfBirth, []string{"3", "4", "2", "1"}},
		{FieldAge, []string{"3", "1", "2", "4"}},
		{FieldCountry, []string{"3", "2", "4", "1"}},
		{FieldAddress, []string{"3", "4", "2", "1"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			got := ids(SortPersons(all, tc.field, SortASC))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortPersons_DescIsReverseOfAsc(t *testing.T) {
	all := samplePersons()

	// claves distintas en estos campos
	for _, f := range []Field{FieldName, FieldEmail, FieldDateOfBirth, FieldAge, FieldCountry, FieldAddress} {
		asc := ids(SortPersons(all, f, SortASC))
		slices.Reverse(asc)
		desc := ids(SortPersons(all, f, SortDESC))
		if diff := cmp.Diff(asc, desc); diff != "" {
			t.Fatalf("%s: reversed ASC vs DESC (-asc +desc):\n%s", f, diff)
		}
	}
}

func TestSortPersons_StableForTies(t *testing.T) {
	all := samplePersons()

	got := ids(SortPersons(all, FieldReceiveNewsLetters, SortASC))
	if diff := cmp.Diff([]string{"2", "4", "1", "3"}, got); diff != "" {
		t.Fatalf("ASC (-want +got):\n%s", diff)
	}

	got = ids(SortPersons(all, FieldGender, SortDESC))
	if diff := cmp.Diff([]string{"4", "1", "3", "2"}, got); diff != "" {
		t.Fatalf("DESC (-want +got):\n%s", diff)
	}
}

func TestSortPersons_DoesNotMutateInput(t *testing.T) {
	all := samplePersons()
	before := ids(all)

	_ = SortPersons(all, FieldName, SortDESC)

	if diff := cmp.Diff(before, ids(all)); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestParseSortOrder(t *testing.T) {
	cases := map[string]SortOrder{
		"":      SortASC,
		"ASC":   SortASC,
		"desc":  SortDESC,
		" DESC": SortDESC,
		"zzz":   SortASC,
	}
	for in, want := range cases {
		if got := ParseSortOrder(in); got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if SortASC.Toggle() != SortDESC || SortDESC.Toggle() != SortASC {
		t.Fatalf("toggle broken")
	}
}
