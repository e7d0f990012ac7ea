package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	for name := range pages {
		if _, ok := r.pages[name]; !ok {
			t.Fatalf("page %s not parsed", name)
		}
	}
}

func TestRender_UnknownPage(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := MustNewRenderer().Render(rec, http.StatusOK, "nope", nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("nothing should be written on error")
	}
}

func TestRender_FailedTemplateWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	// persons_delete espera .Person: un string hace fallar la ejecución
	if err := MustNewRenderer().Render(rec, http.StatusOK, "persons_delete", "bad data"); err == nil {
		t.Fatalf("expected execution error")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("partial page written: %q", rec.Body.String())
	}
}

func TestRender_UploadPage(t *testing.T) {
	rec := httptest.NewRecorder()
	data := struct {
		Title        string
		Message      string
		ErrorMessage string
	}{Title: "Upload Countries", Message: "3 Countries Upload"}

	if err := MustNewRenderer().Render(rec, http.StatusOK, "countries_upload", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Upload Countries - Contacts Manager</title>") || !strings.Contains(body, "3 Countries Upload") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestFuncs(t *testing.T) {
	date := funcs["date"].(func(*time.Time, string) string)
	intp := funcs["intp"].(func(*int) string)

	if date(nil, "2006") != "" || intp(nil) != "" {
		t.Fatalf("nil values should render empty")
	}
	d := time.Date(2002, 5, 28, 0, 0, 0, 0, time.UTC)
	if got := date(&d, "02 Jan 2006"); got != "28 May 2002" {
		t.Fatalf("date: %q", got)
	}
	n := 22
	if got := intp(&n); got != "22" {
		t.Fatalf("intp: %q", got)
	}
}
