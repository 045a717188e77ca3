package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Finalidades de token. Um token de recuperação de senha nunca vale como sessão.
const (
	FinalidadeSessao      = "sessao"
	FinalidadeRecuperacao = "recuperacao"
)

// Claims inclui os claims padrão JWT mais a identidade do usuário.
// O token carrega apenas identidade (id e e-mail): cargo, unidade e status são
// sempre relidos do banco a cada requisição, nunca confiados ao token.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Finalidade string `json:"finalidade"`
}

// GerarSessao gera um token de sessão assinado (expiração em horas).
func GerarSessao(secret, userID, email, issuer string, expHoras int) (string, error) {
	return gerar(secret, userID, email, issuer, FinalidadeSessao, time.Duration(expHoras)*time.Hour)
}

// GerarRecuperacao gera um token curto de recuperação de senha (expiração em minutos).
func GerarRecuperacao(secret, userID, email, issuer string, expMinutos int) (string, error) {
	return gerar(secret, userID, email, issuer, FinalidadeRecuperacao, time.Duration(expMinutos)*time.Minute)
}

func gerar(secret, userID, email, issuer, finalidade string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:     userID,
		Email:      email,
		Finalidade: finalidade,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve userID, email e finalidade.
// Retorna erro se o token é inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (userID, email, finalidade string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.Email, claims.Finalidade, nil
}
