package countries

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"contact-manager/internal/platform/logger"
	"contact-manager/internal/web"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service, view *web.Renderer, log logger.Logger) {
	log = log.With(map[string]any{"component": "countries"})

	r.Route("/Countries", func(cr chi.Router) {
		cr.Get("/UploadFromExcel", uploadFormHandler(view, log))
		cr.Post("/UploadFromExcel", uploadHandler(svc, view, log))
	})

	r.Route("/api/countries", func(ar chi.Router) {
		ar.Get("/", listCountriesHandler(svc, log))
		ar.Post("/", createCountryHandler(svc, log))
	})
}

type uploadPage struct {
	Title        string
	Message      string
	ErrorMessage string
}

type createCountryRequest struct {
	Name string `json:"name"`
}

func uploadFormHandler(view *web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, view, log, uploadPage{Title: "Upload Countries"})
	}
}

func uploadHandler(svc *Service, view *web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := uploadPage{Title: "Upload Countries"}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		file, header, err := r.FormFile("excelFile")
		if err != nil || header == nil || header.Size == 0 {
			page.ErrorMessage = "Please Select a excel file."
			render(w, view, log, page)
			return
		}
		defer file.Close()

		if err := CheckExcelFileName(header.Filename); err != nil {
			page.ErrorMessage = "Unsupported file. 'xlsx' file is expected"
			render(w, view, log, page)
			return
		}

		n, err := svc.UploadFromExcelFile(r.Context(), file)
		if err != nil {
			serverError(w, log, err)
			return
		}

		log.Info("countries uploaded", map[string]any{"file": header.Filename, "inserted": n})
		page.Message = fmt.Sprintf("%d Countries Upload", n)
		render(w, view, log, page)
	}
}

// listCountriesHandler godoc
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} CountryResponse
// @Failure 500 {string} string "Error ocurred."
// @Router /api/countries [get]
func listCountriesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAllCountries(r.Context())
		if err != nil {
			serverError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createCountryHandler godoc
// @Summary Add a country
// @Description Country names are unique (case-sensitive exact match).
// @Tags countries
// @Accept json
// @Produce json
// @Param payload body createCountryRequest true "Country"
// @Success 201 {object} CountryResponse
// @Failure 400 {string} string "invalid json / blank name"
// @Failure 409 {string} string "duplicate name"
// @Router /api/countries [post]
func createCountryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCountryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.AddCountry(r.Context(), &CountryAddRequest{Name: req.Name})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrDuplicateName):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				serverError(w, log, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, c)
	}
}

func render(w http.ResponseWriter, view *web.Renderer, log logger.Logger, page uploadPage) {
	if err := view.Render(w, http.StatusOK, "countries_upload", page); err != nil {
		log.Error("render failed", map[string]any{"err": err})
	}
}

func serverError(w http.ResponseWriter, log logger.Logger, err error) {
	log.Error("request failed", map[string]any{"err": err})
	http.Error(w, "Error ocurred.", http.StatusInternalServerError)
}

// writeJSON está duplicado en cada paquete de handlers (countries/persons)
// para no crear un helper compartido por dos líneas.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
