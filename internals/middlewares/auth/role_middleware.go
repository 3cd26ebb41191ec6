// file: internals/middlewares/auth/role_middleware.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	helper "kampusku_backend/internals/helpers"
)

// RequireRoles rejects the request unless the token role is one of the given.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role not found in token")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden for role "+role)
		}
		return c.Next()
	}
}
