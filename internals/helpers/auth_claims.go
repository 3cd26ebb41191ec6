// file: internals/helpers/auth_claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
)

// GetUserIDFromToken reads the authenticated user id hydrated into locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool     { return GetRoleFromToken(c) == constants.RoleAdmin }
func IsProfessor(c *fiber.Ctx) bool { return GetRoleFromToken(c) == constants.RoleProfessor }
func IsStudent(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == constants.RoleStudent }
