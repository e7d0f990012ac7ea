package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"contact-manager/internal/platform/logger"
	"contact-manager/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenAuthorization exige la cookie cookieName con un token que el verifier acepte.
// Sin cookie o con token inválido corta con 401; si pasa, deja las claims en el contexto.
func TokenAuthorization(verifier auth.TokenVerifier, cookieName string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookieToken(r, cookieName)
			if token == "" || verifier == nil {
				log.Warn("authorization cookie missing", map[string]any{"path": r.URL.Path, "cookie": cookieName})
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrInvalidToken) {
					log.Error("token verification failed", map[string]any{"err": err})
				}
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IssueToken entrega la cookie que después pide TokenAuthorization.
func IssueToken(cookieName, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r)
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func cookieToken(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}
