// Package token assina e verifica o token de acesso (JWT HS256).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido falha única de verificação. Estrutura malformada, assinatura
// incorreta e expiração retornam todas este erro: quem chama não consegue
// distinguir o motivo.
var ErrTokenInvalido = errors.New("credenciais inválidas")

// Claims claims padrão JWT mais os campos próprios da aplicação.
type Claims struct {
	jwt.RegisteredClaims
	RoleID             int    `json:"role_id"`
	OrganizationID     string `json:"organization_id"`
	Email              string `json:"user_email"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Emitir gera um token assinado com expiração absoluta. sub é o id da conta.
func Emitir(secret, issuer, sub, email, organizationID string, roleID int, mustChangePassword bool, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		RoleID:             roleID,
		OrganizationID:     organizationID,
		Email:              email,
		MustChangePassword: mustChangePassword,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Analisar verifica assinatura e expiração e devolve os claims. Qualquer
// falha vira ErrTokenInvalido.
func Analisar(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vazio")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalido
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
