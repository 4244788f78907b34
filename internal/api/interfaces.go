package api

import (
	"github.com/golang-jwt/jwt/v5"
)

// Tokens are issued by the identity provider. The API only verifies them.
type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// Subject carries the user id.
type JWTClaims struct {
	jwt.RegisteredClaims
}
