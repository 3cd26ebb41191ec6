// file: internals/route/details/admin_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentController "kampusku_backend/internals/features/academics/departments/controller"
	professorController "kampusku_backend/internals/features/academics/professors/controller"
)

// AdminRoutes — master data: departments and professor accounts.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	dept := departmentController.NewDepartmentController(db)
	r.Post("/departments", dept.Create)
	r.Get("/departments", dept.List)
	r.Get("/departments/:id", dept.Detail)
	r.Put("/departments/:id", dept.Update)
	r.Delete("/departments/:id", dept.Delete)

	prof := professorController.NewProfessorController(db)
	r.Post("/professors", prof.Create)
	r.Get("/professors", prof.List)
	r.Get("/professors/:id", prof.Detail)
	r.Put("/professors/:id", prof.Update)
	r.Delete("/professors/:id", prof.Delete)
}
