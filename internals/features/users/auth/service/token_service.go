// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Bearer tokens carry {id, role} and live for 30 days.
const TokenTTL = 30 * 24 * time.Hour

// CreateToken signs an HS256 access token for the given identity.
func CreateToken(secret string, id uuid.UUID, role string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	claims := jwt.MapClaims{
		"id":   id.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and returns {id, role}.
func ParseToken(secret, tokenString string) (uuid.UUID, string, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, "", errors.New("invalid token")
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", errors.New("invalid id claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return uuid.Nil, "", errors.New("missing role claim")
	}
	return id, role, nil
}
