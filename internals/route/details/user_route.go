// file: internals/route/details/user_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "kampusku_backend/internals/features/attendance/sessions/controller"
	authController "kampusku_backend/internals/features/users/auth/controller"
	middlewares "kampusku_backend/internals/middlewares"
)

// UserRoutes — endpoints for any authenticated user (students included).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	auth := authController.NewAuthController(db)
	r.Get("/me", auth.Me)
	r.Post("/logout", auth.Logout)

	// Check-in + own attendance history
	record := sessionController.NewAttendanceRecordController(db)
	r.Post("/attendance/check-in", middlewares.CheckInRateLimiter(), record.CheckIn)
	r.Get("/attendance/records", record.MyRecords)

	// Window status for the countdown display: one-shot and SSE
	live := sessionController.NewSessionLiveController(db)
	r.Get("/attendance/sessions/:id/status", live.Status)
	r.Get("/attendance/sessions/:id/live", live.Live)
}
