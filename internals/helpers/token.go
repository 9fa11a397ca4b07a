package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads c.Locals("user_id") set by the auth middleware.
// 401 when not logged in, 400 when the value is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetRoleFromToken reads c.Locals("role").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("role")
	role, ok := v.(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role missing from token")
	}
	return role, nil
}

// IsAdmin reports whether the request carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, err := GetRoleFromToken(c)
	return err == nil && role == "admin"
}
