package ds

import (
	"paperhelp/internal/app/role"

	"github.com/golang-jwt/jwt"
)

// JWTClaims содержимое токена демо-сессии
type JWTClaims struct {
	jwt.StandardClaims
	Email string    `json:"email"`
	Role  role.Role `json:"role"`
}
