package persons

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"contact-manager/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func registerAPIRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/persons", func(ar chi.Router) {
		ar.Get("/", listPersonsHandler(svc, log))
		ar.Post("/", createPersonHandler(svc, log))
		ar.Get("/{personID}", getPersonHandler(svc, log))
		ar.Put("/{personID}", updatePersonHandler(svc, log))
		ar.Delete("/{personID}", deletePersonHandler(svc, log))
	})
}

// personPayload es el body de POST/PUT. date_of_birth va como "2006-01-02".
type personPayload struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	Gender             string `json:"gender"`
	CountryID          string `json:"country_id"`
	Address            string `json:"address"`
	ReceiveNewsLetters bool   `json:"receive_news_letters"`
	TIN                string `json:"tin,omitempty"`
}

type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

func (p personPayload) dateOfBirth() (*time.Time, error) {
	s := strings.TrimSpace(p.DateOfBirth)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(FormDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// listPersonsHandler godoc
// @Summary List persons
// @Description Optional search (case-insensitive substring) and sort.
// @Tags persons
// @Produce json
// @Param searchBy query string false "Name, Email, DateOfBirth, Gender, CountryId, Address"
// @Param searchString query string false "text to search"
// @Param sortBy query string false "Name, Email, DateOfBirth, Age, Gender, Country, Address, ReceiveNewsLetters"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {array} PersonResponse
// @Failure 500 {string} string "Error ocurred."
// @Router /api/persons [get]
func listPersonsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.GetFilteredPersons(r.Context(), Field(q.Get("searchBy")), q.Get("searchString"))
		if err != nil {
			serverError(w, log, err)
			return
		}
		items = svc.GetSortedPersons(items, Field(q.Get("sortBy")), ParseSortOrder(q.Get("sortOrder")))

		writeJSON(w, http.StatusOK, items)
	}
}

// getPersonHandler godoc
// @Summary Get person by id
// @Tags persons
// @Produce json
// @Param personID path string true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 404 {string} string "not found"
// @Router /api/persons/{personID} [get]
func getPersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPersonByPersonID(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			serverError(w, log, err)
			return
		}
		if p == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// createPersonHandler godoc
// @Summary Add a person
// @Tags persons
// @Accept json
// @Produce json
// @Param payload body personPayload true "Person"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} validationErrorResponse
// @Router /api/persons [post]
func createPersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in personPayload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		dob, err := in.dateOfBirth()
		if err != nil {
			http.Error(w, "invalid date_of_birth (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		resp, err := svc.AddPerson(r.Context(), &PersonAddRequest{
			Name:               in.Name,
			Email:              in.Email,
			DateOfBirth:        dob,
			Gender:             Gender(in.Gender),
			CountryID:          in.CountryID,
			Address:            in.Address,
			ReceiveNewsLetters: in.ReceiveNewsLetters,
			TIN:                in.TIN,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// updatePersonHandler godoc
// @Summary Update a person
// @Description Replaces every mutable field. A blank tin keeps the stored one.
// @Tags persons
// @Accept json
// @Produce json
// @Param personID path string true "Person ID"
// @Param payload body personPayload true "Person"
// @Success 200 {object} PersonResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 404 {string} string "given person id doesn't exist"
// @Router /api/persons/{personID} [put]
func updatePersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in personPayload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		dob, err := in.dateOfBirth()
		if err != nil {
			http.Error(w, "invalid date_of_birth (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		resp, err := svc.UpdatePerson(r.Context(), &PersonUpdateRequest{
			ID:                 chi.URLParam(r, "personID"),
			Name:               in.Name,
			Email:              in.Email,
			DateOfBirth:        dob,
			Gender:             Gender(in.Gender),
			CountryID:          in.CountryID,
			Address:            in.Address,
			ReceiveNewsLetters: in.ReceiveNewsLetters,
			TIN:                in.TIN,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// deletePersonHandler godoc
// @Summary Delete a person
// @Tags persons
// @Param personID path string true "Person ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /api/persons/{personID} [delete]
func deletePersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.DeletePerson(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		if !deleted {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{Errors: verr.Messages})
	case errors.Is(err, ErrNilRequest), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		serverError(w, log, err)
	}
}

func serverError(w http.ResponseWriter, log logger.Logger, err error) {
	log.Error("request failed", map[string]any{"err": err})
	http.Error(w, "Error ocurred.", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
