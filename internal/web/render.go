package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// páginas => archivos extra que necesitan además del layout
var pages = map[string][]string{
	"persons_index":    {"templates/persons_index.html"},
	"persons_create":   {"templates/persons_form.html", "templates/persons_create.html"},
	"persons_edit":     {"templates/persons_form.html", "templates/persons_edit.html"},
	"persons_delete":   {"templates/persons_delete.html"},
	"countries_upload": {"templates/countries_upload.html"},
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	out := make(map[string]*template.Template, len(pages))
	for name, files := range pages {
		patterns := append([]string{"templates/layout.html"}, files...)
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		out[name] = t
	}
	return &Renderer{pages: out}, nil
}

// MustNewRenderer es para wiring y tests: los templates van embebidos,
// así que un error acá es un bug de build.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render ejecuta en buffer para no mandar una página a medias si el template falla.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"date": func(t *time.Time, layout string) string {
		if t == nil {
			return ""
		}
		return t.Format(layout)
	},
	"intp": func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprint(*p)
	},
}
