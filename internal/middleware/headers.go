package middleware

import (
	"net/http"
	"time"

	"contact-manager/internal/platform/logger"
)

// LastModifiedLayout es "dd/MM/yyyy HH:mm".
const LastModifiedLayout = "02/01/2006 15:04"

// ResponseHeader agrega key: value a toda respuesta que pase por acá.
func ResponseHeader(key, value string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, value)
			log.Debug("response header set", map[string]any{"key": key, "path": r.URL.Path})
			next.ServeHTTP(w, r)
		})
	}
}

// LastModified pone la hora actual en Last-Modified. now == nil usa time.Now.
func LastModified(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Last-Modified", now().Format(LastModifiedLayout))
			next.ServeHTTP(w, r)
		})
	}
}
