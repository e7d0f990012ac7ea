package static

import (
	"context"
	"crypto/subtle"
	"strings"

	"contact-manager/internal/ports/auth"
)

// Verifier acepta un único token fijo (el valor de la cookie Auth-Key).
// No hay sesiones: es el chequeo mínimo que protege la edición de personas.
type Verifier struct {
	token   string
	subject string
}

func NewVerifier(token string) *Verifier {
	return &Verifier{token: strings.TrimSpace(token), subject: "cookie"}
}

// Token es el valor que IssueToken entrega al cliente.
func (v *Verifier) Token() string {
	return v.token
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if v.token == "" || token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) != 1 {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return auth.Claims{Subject: v.subject}, nil
}
