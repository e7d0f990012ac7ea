package middleware

import (
	"fmt"
	"net/http"

	"contact-manager/internal/platform/logger"
)

// ExceptionHandling recupera panics de los handlers: loguea tipo y mensaje
// y responde 500 "Error ocurred.".
func ExceptionHandling(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// el server lo usa para abortar la respuesta; no es un error nuestro
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("unhandled panic", map[string]any{
					"type":    fmt.Sprintf("%T", rec),
					"message": fmt.Sprint(rec),
					"method":  r.Method,
					"path":    r.URL.Path,
				})
				http.Error(w, "Error ocurred.", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
