package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken lo devuelve un TokenVerifier cuando el token no es aceptado.
var ErrInvalidToken = errors.New("invalid token")

// Claims representa lo que el verifier pudo extraer del token.
type Claims struct {
	Subject string
}

// TokenVerifier valida el token que llega en la cookie de autorización.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
