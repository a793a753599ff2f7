package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims define as informações que o cliente precisa ler do JWT emitido pelo
// servidor. Apenas as claims registradas nos interessam (em especial o exp).
type Claims struct {
	jwt.RegisteredClaims
}

// Decode extrai as claims do token SEM verificar a assinatura. O cliente não
// possui a chave secreta do servidor; a validade criptográfica é verificada
// pela própria API a cada requisição. Aqui só precisamos ler o exp.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// Expirado informa se a credencial deve ser tratada como expirada.
// Fail-closed: token malformado, sem claim exp, ou com exp no passado (ou
// exatamente agora) conta como expirado. Nunca panica.
func Expirado(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		return true
	}

	return !time.Now().Before(claims.ExpiresAt.Time)
}
