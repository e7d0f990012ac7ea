package persons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contact-manager/internal/domain/countries"
	"contact-manager/internal/platform/logger"
	"contact-manager/internal/web"

	"github.com/go-chi/chi/v5"
)

// FormDateLayout es el formato de <input type="date">.
const FormDateLayout = "2006-01-02"

// RouteMiddleware son las cadenas por ruta que arma el router.
// Cualquiera puede quedar vacía.
type RouteMiddleware struct {
	Group     []func(http.Handler) http.Handler // todas las rutas de personas
	Index     []func(http.Handler) http.Handler
	CreateGet []func(http.Handler) http.Handler
	EditGet   []func(http.Handler) http.Handler
	EditPost  []func(http.Handler) http.Handler
}

type handlers struct {
	svc       *Service
	countries *countries.Service
	view      *web.Renderer
	log       logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, countriesSvc *countries.Service, view *web.Renderer, log logger.Logger, mw RouteMiddleware) {
	h := &handlers{
		svc:       svc,
		countries: countriesSvc,
		view:      view,
		log:       log.With(map[string]any{"component": "persons"}),
	}

	r.Group(func(g chi.Router) {
		g.Use(mw.Group...)

		g.With(mw.Index...).Get("/", h.index)

		g.Route("/Persons", func(pr chi.Router) {
			pr.With(mw.Index...).Get("/Index", h.index)

			pr.With(mw.CreateGet...).Get("/Create", h.createForm)
			pr.Post("/Create", h.create)

			pr.With(mw.EditGet...).Get("/Edit/{personID}", h.editForm)
			pr.With(mw.EditPost...).Post("/Edit/{personID}", h.edit)

			pr.Get("/Delete/{personID}", h.deleteForm)
			pr.Post("/Delete/{personID}", h.delete)

			pr.Get("/PersonsPDF", h.exportPDF)
			pr.Get("/PersonsCSV", h.exportCSV)
			pr.Get("/PersonsExcel", h.exportExcel)
		})
	})

	registerAPIRoutes(r, svc, h.log)
}

type searchOption struct {
	Value    string
	Label    string
	Selected bool
}

type sortLink struct {
	Href   string
	Label  string
	Active bool
	Order  SortOrder
}

type indexPage struct {
	Title               string
	SearchFields        []searchOption
	CurrentSearchString string
	Columns             []sortLink
	Persons             []PersonResponse
}

// personForm es el estado del formulario tal como lo ve la vista (todo texto).
type personForm struct {
	ID                 string
	Name               string
	Email              string
	DateOfBirth        string
	Gender             string
	CountryID          string
	Address            string
	TIN                string
	ReceiveNewsLetters bool
}

type formPage struct {
	Title     string
	Form      personForm
	Errors    []string
	Genders   []string
	Countries []countries.CountryResponse
}

type deletePage struct {
	Title  string
	Person PersonResponse
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	searchBy := Field(q.Get("searchBy"))
	searchString := q.Get("searchString")
	sortBy := Field(q.Get("sortBy"))
	if sortBy == "" {
		sortBy = FieldName
	}
	order := ParseSortOrder(q.Get("sortOrder"))

	filtered, err := h.svc.GetFilteredPersons(r.Context(), searchBy, searchString)
	if err != nil {
		h.serverError(w, err)
		return
	}

	page := indexPage{
		Title:               "Persons",
		SearchFields:        searchOptions(searchBy),
		CurrentSearchString: searchString,
		Columns:             sortLinks(searchBy, searchString, sortBy, order),
		Persons:             h.svc.GetSortedPersons(filtered, sortBy, order),
	}
	h.render(w, "persons_index", page)
}

func (h *handlers) createForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "persons_create", "Create Person", personForm{}, nil)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	form, err := parsePersonForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req, msgs := form.toAddRequest()
	if len(msgs) == 0 {
		_, err = h.svc.AddPerson(r.Context(), &req)
		msgs, err = validationMessagesOf(err)
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	if len(msgs) > 0 {
		h.renderForm(w, r, "persons_create", "Create Person", form, msgs)
		return
	}

	http.Redirect(w, r, "/Persons/Index", http.StatusFound)
}

func (h *handlers) editForm(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPersonByPersonID(r.Context(), chi.URLParam(r, "personID"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if p == nil {
		http.Redirect(w, r, "/Persons/Index", http.StatusFound)
		return
	}

	h.renderForm(w, r, "persons_edit", "Edit Person", formFromUpdateRequest(p.ToPersonUpdateRequest()), nil)
}

func (h *handlers) edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "personID")

	form, err := parsePersonForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form.ID = id

	req, msgs := form.toUpdateRequest()
	if len(msgs) == 0 {
		_, err = h.svc.UpdatePerson(r.Context(), &req)
		if errors.Is(err, ErrNotFound) {
			http.Redirect(w, r, "/Persons/Index", http.StatusFound)
			return
		}
		msgs, err = validationMessagesOf(err)
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	if len(msgs) > 0 {
		h.renderForm(w, r, "persons_edit", "Edit Person", form, msgs)
		return
	}

	http.Redirect(w, r, "/Persons/Index", http.StatusFound)
}

func (h *handlers) deleteForm(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPersonByPersonID(r.Context(), chi.URLParam(r, "personID"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if p == nil {
		http.Redirect(w, r, "/Persons/Index", http.StatusFound)
		return
	}

	h.render(w, "persons_delete", deletePage{Title: "Delete Person", Person: *p})
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "personID")

	deleted, err := h.svc.DeletePerson(r.Context(), id)
	if err != nil && !errors.Is(err, ErrNilRequest) {
		h.serverError(w, err)
		return
	}
	if deleted {
		h.log.Info("person deleted", map[string]any{"person_id": id})
	}

	http.Redirect(w, r, "/Persons/Index", http.StatusFound)
}

func (h *handlers) exportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "application/pdf", "persons.pdf", h.svc.GetPersonsPDF)
}

func (h *handlers) exportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "text/csv; charset=utf-8", "persons.csv", h.svc.GetPersonsCSV)
}

func (h *handlers) exportExcel(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "persons.xlsx", h.svc.GetPersonsExcel)
}

// export genera en buffer: si falla a mitad de camino todavía podemos responder 500.
func (h *handlers) export(w http.ResponseWriter, r *http.Request, contentType, filename string, gen func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := gen(r.Context(), &buf); err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *handlers) renderForm(w http.ResponseWriter, r *http.Request, page, title string, form personForm, errs []string) {
	cs, err := h.countries.GetAllCountries(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	genders := make([]string, 0, len(Genders))
	for _, g := range Genders {
		genders = append(genders, string(g))
	}

	h.render(w, page, formPage{
		Title:     title,
		Form:      form,
		Errors:    errs,
		Genders:   genders,
		Countries: cs,
	})
}

func (h *handlers) render(w http.ResponseWriter, page string, data any) {
	if err := h.view.Render(w, http.StatusOK, page, data); err != nil {
		h.serverError(w, err)
	}
}

func (h *handlers) serverError(w http.ResponseWriter, err error) {
	serverError(w, h.log, err)
}

func searchOptions(current Field) []searchOption {
	out := make([]searchOption, 0, len(SearchFields))
	for _, f := range SearchFields {
		out = append(out, searchOption{
			Value:    string(f.Field),
			Label:    f.Label,
			Selected: f.Field == current,
		})
	}
	return out
}

// sortLinks: la columna activa alterna el orden, el resto arranca en ASC.
func sortLinks(searchBy Field, searchString string, sortBy Field, order SortOrder) []sortLink {
	out := make([]sortLink, 0, len(SortColumns))
	for _, c := range SortColumns {
		active := c.Field == sortBy
		next := SortASC
		if active {
			next = order.Toggle()
		}

		v := url.Values{}
		v.Set("searchBy", string(searchBy))
		v.Set("searchString", searchString)
		v.Set("sortBy", string(c.Field))
		v.Set("sortOrder", string(next))

		out = append(out, sortLink{
			Href:   "/Persons/Index?" + v.Encode(),
			Label:  c.Label,
			Active: active,
			Order:  order,
		})
	}
	return out
}

func parsePersonForm(r *http.Request) (personForm, error) {
	if err := r.ParseForm(); err != nil {
		return personForm{}, err
	}
	return personForm{
		ID:                 strings.TrimSpace(r.PostForm.Get("ID")),
		Name:               r.PostForm.Get("Name"),
		Email:              r.PostForm.Get("Email"),
		DateOfBirth:        strings.TrimSpace(r.PostForm.Get("DateOfBirth")),
		Gender:             r.PostForm.Get("Gender"),
		CountryID:          r.PostForm.Get("CountryID"),
		Address:            r.PostForm.Get("Address"),
		TIN:                r.PostForm.Get("TIN"),
		ReceiveNewsLetters: checkbox(r.PostForm.Get("ReceiveNewsLetters")),
	}, nil
}

func (f personForm) toAddRequest() (PersonAddRequest, []string) {
	dob, msgs := parseFormDate(f.DateOfBirth)
	return PersonAddRequest{
		Name:               f.Name,
		Email:              f.Email,
		DateOfBirth:        dob,
		Gender:             Gender(f.Gender),
		CountryID:          f.CountryID,
		Address:            f.Address,
		ReceiveNewsLetters: f.ReceiveNewsLetters,
		TIN:                f.TIN,
	}, msgs
}

func (f personForm) toUpdateRequest() (PersonUpdateRequest, []string) {
	dob, msgs := parseFormDate(f.DateOfBirth)
	return PersonUpdateRequest{
		ID:                 f.ID,
		Name:               f.Name,
		Email:              f.Email,
		DateOfBirth:        dob,
		Gender:             Gender(f.Gender),
		CountryID:          f.CountryID,
		Address:            f.Address,
		ReceiveNewsLetters: f.ReceiveNewsLetters,
		TIN:                f.TIN,
	}, msgs
}

func formFromUpdateRequest(req PersonUpdateRequest) personForm {
	f := personForm{
		ID:                 req.ID,
		Name:               req.Name,
		Email:              req.Email,
		Gender:             string(req.Gender),
		CountryID:          req.CountryID,
		Address:            req.Address,
		TIN:                req.TIN,
		ReceiveNewsLetters: req.ReceiveNewsLetters,
	}
	if req.DateOfBirth != nil {
		f.DateOfBirth = req.DateOfBirth.Format(FormDateLayout)
	}
	return f
}

func parseFormDate(s string) (*time.Time, []string) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(FormDateLayout, s)
	if err != nil {
		return nil, []string{"Date of birth should be a valid date."}
	}
	return &t, nil
}

// validationMessagesOf separa errores de validación (se muestran en el form)
// del resto (se propagan).
func validationMessagesOf(err error) ([]string, error) {
	if err == nil {
		return nil, nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, nil
	}
	return nil, err
}

func checkbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1":
		return true
	}
	return false
}
