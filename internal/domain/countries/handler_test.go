package countries

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact-manager/internal/platform/logger"
	"contact-manager/internal/web"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo *testRepo) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService(repo), web.MustNewRenderer(), logger.NewNop())
	return r
}

func multipartUpload(t *testing.T, filename string, content io.Reader) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile("excelFile", filename)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := io.Copy(fw, content); err != nil {
			t.Fatalf("copy: %v", err)
		}
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/Countries/UploadFromExcel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler_Messages(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		content  func(t *testing.T) io.Reader
		want     string
	}{
		{
			name: "no file",
			want: "Please Select a excel file.",
		},
		{
			name:     "wrong extension",
			filename: "countries.csv",
			content:  func(*testing.T) io.Reader { return strings.NewReader("Chile") },
			want:     "Unsupported file. &#39;xlsx&#39; file is expected",
		},
		{
			name:     "ok",
			filename: "countries.xlsx",
			content: func(t *testing.T) io.Reader {
				return buildWorkbook(t, ImportSheet, "Japan", "Brazil", "Japan")
			},
			want: "1 Countries Upload",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var content io.Reader = strings.NewReader("")
			if tc.content != nil {
				content = tc.content(t)
			}

			rec := httptest.NewRecorder()
			newTestRouter(newTestRepo("Japan")).ServeHTTP(rec, multipartUpload(t, tc.filename, content))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("expected %q in body:\n%s", tc.want, rec.Body.String())
			}
		})
	}
}

func TestCountriesAPI(t *testing.T) {
	h := newTestRouter(newTestRepo())

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/countries", strings.NewReader(body))
		h.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(`{"name":"Brazil"}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec := post(`{"name":"Brazil"}`); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if rec := post(`{"name":" "}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := post(`{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/countries", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"name":"Brazil"`) {
		t.Fatalf("unexpected list: %d %s", rec.Code, rec.Body.String())
	}
}
