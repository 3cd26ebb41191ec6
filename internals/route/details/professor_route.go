// file: internals/route/details/professor_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "kampusku_backend/internals/features/academics/class_schedules/controller"
	sessionController "kampusku_backend/internals/features/attendance/sessions/controller"
)

// ProfessorRoutes — schedule management and the attendance session lifecycle.
func ProfessorRoutes(r fiber.Router, db *gorm.DB) {
	sched := scheduleController.NewClassScheduleController(db)
	r.Post("/class-schedules", sched.Create)
	r.Get("/class-schedules", sched.List)
	r.Get("/class-schedules/:id", sched.Detail)
	r.Put("/class-schedules/:id", sched.Update)
	r.Delete("/class-schedules/:id", sched.Delete)

	sess := sessionController.NewAttendanceSessionController(db)
	r.Post("/attendance/sessions", sess.Open)
	r.Get("/attendance/sessions", sess.List)
	r.Get("/attendance/sessions/:id", sess.Detail)
	r.Patch("/attendance/sessions/:id", sess.Update)
	r.Post("/attendance/sessions/:id/close", sess.Close)
	r.Get("/attendance/sessions/:id/records", sess.Records)
}
