// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "kampusku_backend/internals/features/users/auth/service"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
	routeDetails "kampusku_backend/internals/route/details"

	"kampusku_backend/internals/constants"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret: os.Getenv("JWT_SECRET"),
		BlacklistChecker: func(raw string) (bool, error) {
			return authService.IsTokenBlacklisted(db, raw)
		},
		AllowCookieFallback: true,
	}

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (any logged-in user) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthJWT(jwtOpts))
	routeDetails.UserRoutes(user, db)

	// ===================== PROFESSOR =====================
	log.Println("[INFO] Setting up PROFESSOR group (Auth + RoleCheck)...")
	professor := app.Group("/api/p",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireRoles(constants.RoleProfessor),
	)
	routeDetails.ProfessorRoutes(professor, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireRoles(constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(admin, db)
}
