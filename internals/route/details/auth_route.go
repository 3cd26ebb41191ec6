// file: internals/route/details/auth_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kampusku_backend/internals/features/users/auth/controller"
	middlewares "kampusku_backend/internals/middlewares"
)

// AuthRoutes — public endpoints, rate-limited per handler.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
