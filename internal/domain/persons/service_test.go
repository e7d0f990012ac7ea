package persons

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"contact-manager/internal/domain/countries"

	"github.com/google/go-cmp/cmp"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

const (
	japanID  = "05c1175a-432e-4ad2-b76a-be80c8f45a58"
	brazilID = "76a296fb-f21f-448e-a75d-d66e50fe6777"
)

var testCountries = map[string]countries.Country{
	japanID:  {ID: japanID, Name: "Japan"},
	brazilID: {ID: brazilID, Name: "Brazil"},
}

type testRepo struct {
	byID    map[string]Person
	order   []string
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Person{}}
}

func (r *testRepo) Add(ctx context.Context, p Person) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *testRepo) GetAll(ctx context.Context) ([]Person, error) {
	out := make([]Person, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			out = append(out, r.withCountry(p))
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Person, error) {
	p, ok := r.byID[id]
	if !ok {
		return Person{}, ErrNotFound
	}
	return r.withCountry(p), nil
}

func (r *testRepo) Update(ctx context.Context, p Person) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	r.updates++
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *testRepo) withCountry(p Person) Person {
	if c, ok := testCountries[p.CountryID]; ok {
		p.Country = &c
	}
	return p
}

var fixedNow = time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC)

func newTestService(repo *testRepo) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return fixedNow }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
	}
	return s
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validAddRequest() *PersonAddRequest {
	return &PersonAddRequest{
		Name:               "Maria",
		Email:              "maria@gmail.com",
		DateOfBirth:        date(2002, time.May, 28),
		Gender:             GenderFemale,
		CountryID:          brazilID,
		Address:            "São Paulo",
		ReceiveNewsLetters: true,
	}
}

// -------------------------
// Tests
// -------------------------

func TestAddPerson_NilRequest(t *testing.T) {
	s := newTestService(newTestRepo())
	if _, err := s.AddPerson(context.Background(), nil); !errors.Is(err, ErrNilRequest) {
		t.Fatalf("expected ErrNilRequest, got %v", err)
	}
}

func TestAddPerson_ThenGetByID(t *testing.T) {
	ctx := context.Background()
	s := newTestService(newTestRepo())

	added, err := s.AddPerson(ctx, validAddRequest())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Fatalf("expected generated id")
	}
	if added.Country != "Brazil" {
		t.Fatalf("expected country name Brazil, got %q", added.Country)
	}
	if added.TIN != DefaultTIN {
		t.Fatalf("expected default TIN, got %q", added.TIN)
	}
	if added.Age == nil || *added.Age != 22 {
		t.Fatalf("expected age 22, got %v", added.Age)
	}

	got, err := s.GetPersonByPersonID(ctx, added.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %+v %v", got, err)
	}
	if diff := cmp.Diff(added, *got); diff != "" {
		t.Fatalf("get differs from add (-add +get):\n%s", diff)
	}
}

func TestAddPerson_DoesNotMutateRequest(t *testing.T) {
	req := validAddRequest()
	req.Name = "  Maria  "

	s := newTestService(newTestRepo())
	resp, err := s.AddPerson(context.Background(), req)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.Name != "Maria" {
		t.Fatalf("expected trimmed name, got %q", resp.Name)
	}
	if req.Name != "  Maria  " {
		t.Fatalf("request was mutated: %q", req.Name)
	}
}

func TestAddPerson_ValidationMessages(t *testing.T) {
	s := newTestService(newTestRepo())

	_, err := s.AddPerson(context.Background(), &PersonAddRequest{Email: "not-an-email"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	want := []string{
		"Person name can't be blank.",
		"Email value should be a valid email.",
		"Gender can't be blank",
		"Please select a country",
		"Address can't be blank",
	}
	if diff := cmp.Diff(want, verr.Messages); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
}

func TestAddPerson_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PersonAddRequest)
		want   string
	}{
		{"blank email", func(r *PersonAddRequest) { r.Email = " " }, "Email can't be blank."},
		{"long name", func(r *PersonAddRequest) { r.Name = fmt.Sprintf("%041d", 0) }, "Person name can't exceed 40 characters."},
		{"bad gender", func(r *PersonAddRequest) { r.Gender = "Unknown" }, "Gender should be Male, Female or Other"},
		{"bad country", func(r *PersonAddRequest) { r.CountryID = "brazil" }, "Please select a country"},
		{"short tin", func(r *PersonAddRequest) { r.TIN = "ABC" }, "Tax identification number should be exactly 8 characters."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAddRequest()
			tc.mutate(req)

			_, err := newTestService(newTestRepo()).AddPerson(context.Background(), req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(verr.Messages) != 1 || verr.Messages[0] != tc.want {
				t.Fatalf("expected [%q], got %q", tc.want, verr.Messages)
			}
		})
	}
}

func TestAddPerson_AcceptsGivenTIN(t *testing.T) {
	req := validAddRequest()
	req.TIN = "XYZ12345"

	resp, err := newTestService(newTestRepo()).AddPerson(context.Background(), req)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.TIN != "XYZ12345" {
		t.Fatalf("expected given TIN, got %q", resp.TIN)
	}
}

func TestGetPersonByPersonID_Miss(t *testing.T) {
	s := newTestService(newTestRepo())
	for _, id := range []string{"", "  ", "missing"} {
		p, err := s.GetPersonByPersonID(context.Background(), id)
		if err != nil || p != nil {
			t.Fatalf("id %q: expected nil, nil; got %+v %v", id, p, err)
		}
	}
}

func TestUpdatePerson(t *testing.T) {
	ctx := context.Background()
	s := newTestService(newTestRepo())

	added, err := s.AddPerson(ctx, validAddRequest())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	upd := added.ToPersonUpdateRequest()
	upd.Name = "Maria Clara"
	upd.CountryID = japanID
	upd.DateOfBirth = nil
	upd.TIN = ""

	got, err := s.UpdatePerson(ctx, &upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Maria Clara" || got.Country != "Japan" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Age != nil || got.DateOfBirth != nil {
		t.Fatalf("expected nil date/age, got %v %v", got.DateOfBirth, got.Age)
	}
	if got.TIN != DefaultTIN {
		t.Fatalf("blank TIN should keep current, got %q", got.TIN)
	}
}

func TestUpdatePerson_Errors(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	s := newTestService(repo)

	if _, err := s.UpdatePerson(ctx, nil); !errors.Is(err, ErrNilRequest) {
		t.Fatalf("expected ErrNilRequest, got %v", err)
	}

	add := validAddRequest()
	unknown := PersonUpdateRequest{
		ID:        "ffffffff-ffff-4fff-8fff-ffffffffffff",
		Name:      add.Name,
		Email:     add.Email,
		Gender:    add.Gender,
		CountryID: add.CountryID,
		Address:   add.Address,
	}
	if _, err := s.UpdatePerson(ctx, &unknown); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("repo should not be touched, got %d updates", repo.updates)
	}

	invalid := unknown
	invalid.ID = ""
	if _, err := s.UpdatePerson(ctx, &invalid); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeletePerson(t *testing.T) {
	ctx := context.Background()
	s := newTestService(newTestRepo())

	added, err := s.AddPerson(ctx, validAddRequest())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if ok, err := s.DeletePerson(ctx, added.ID); err != nil || !ok {
		t.Fatalf("first delete: ok=%v err=%v", ok, err)
	}
	if ok, err := s.DeletePerson(ctx, added.ID); err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
	if ok, err := s.DeletePerson(ctx, "unknown"); err != nil || ok {
		t.Fatalf("unknown delete: ok=%v err=%v", ok, err)
	}
	if _, err := s.DeletePerson(ctx, ""); !errors.Is(err, ErrNilRequest) {
		t.Fatalf("expected ErrNilRequest, got %v", err)
	}
}

func TestAgeAt_RoundsOnDays(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		dob  *time.Time
		want *int
	}{
		{nil, nil},
		{date(2000, time.June, 1), intPtr(24)},
		// 23.6 años redondea a 24
		{date(2000, time.October, 26), intPtr(24)},
		// 23.4 años redondea a 23
		{date(2001, time.January, 5), intPtr(23)},
	}

	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, ageAt(tc.dob, now)); diff != "" {
			t.Fatalf("dob %v (-want +got):\n%s", tc.dob, diff)
		}
	}
}

func intPtr(v int) *int { return &v }
