// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"listrikku_backend/internals/configs"
)

// Public webhook paths skipped by auth
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip selected paths (webhooks etc.)
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Read Authorization header
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 3) Parse & verify JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validate exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Store id & role claims in context
		id, _ := claims["id"].(string)
		if strings.TrimSpace(id) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", id)

		role, _ := claims["role"].(string)
		if strings.TrimSpace(role) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role claim")
		}
		c.Locals("role", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - Missing Authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry checks the exp claim with a small leeway.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	var exp time.Time
	switch t := expRaw.(type) {
	case float64:
		exp = time.Unix(int64(t), 0)
	case int64:
		exp = time.Unix(t, 0)
	default:
		return errors.New("invalid exp claim")
	}
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}
