// file: internals/features/academics/class_schedules/controller/class_schedule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentModel "kampusku_backend/internals/features/academics/departments/model"
	scheduleDTO "kampusku_backend/internals/features/academics/class_schedules/dto"
	scheduleModel "kampusku_backend/internals/features/academics/class_schedules/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	helper "kampusku_backend/internals/helpers"
)

type ClassScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{DB: db, Validate: validator.New()}
}

// resolveProfessor maps the authenticated user to their teaching profile.
func (ctrl *ClassScheduleController) resolveProfessor(c *fiber.Ctx) (*professorModel.ProfessorModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var prof professorModel.ProfessorModel
	if err := ctrl.DB.First(&prof, "professor_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusForbidden, "No professor profile for this account")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve professor profile")
	}
	return &prof, nil
}

// ================= CREATE =================
func (ctrl *ClassScheduleController) Create(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}

	var req scheduleDTO.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var dept departmentModel.DepartmentModel
	if err := ctrl.DB.First(&dept, "department_id = ?", req.ClassScheduleDepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	row := req.ToModel(prof.ProfessorID)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Schedule already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class schedule")
	}

	return helper.JsonCreated(c, "Class schedule created", scheduleDTO.ToClassScheduleResponse(&row))
}

// ================= LIST =================
// Professors see their own schedules; ?department_id filters further.
func (ctrl *ClassScheduleController) List(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_professor_id = ?", prof.ProfessorID)
	if deptStr := strings.TrimSpace(c.Query("department_id")); deptStr != "" {
		deptID, err := uuid.Parse(deptStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id filter")
		}
		q = q.Where("class_schedule_department_id = ?", deptID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count class schedules")
	}

	var rows []scheduleModel.ClassScheduleModel
	if err := q.Order("class_schedule_course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list class schedules")
	}

	out := make([]scheduleDTO.ClassScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, scheduleDTO.ToClassScheduleResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ================= DETAIL =================
func (ctrl *ClassScheduleController) Detail(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class schedule id")
	}
	var row scheduleModel.ClassScheduleModel
	if err := ctrl.DB.First(&row,
		"class_schedule_id = ? AND class_schedule_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class schedule")
	}
	return helper.JsonOK(c, "ok", scheduleDTO.ToClassScheduleResponse(&row))
}

// ================= UPDATE =================
func (ctrl *ClassScheduleController) Update(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class schedule id")
	}

	var req scheduleDTO.UpdateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row scheduleModel.ClassScheduleModel
	if err := ctrl.DB.First(&row,
		"class_schedule_id = ? AND class_schedule_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class schedule")
	}

	req.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class schedule")
	}
	return helper.JsonUpdated(c, "Class schedule updated", scheduleDTO.ToClassScheduleResponse(&row))
}

// ================= DELETE (soft) =================
func (ctrl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class schedule id")
	}
	res := ctrl.DB.Delete(&scheduleModel.ClassScheduleModel{},
		"class_schedule_id = ? AND class_schedule_professor_id = ?", id, prof.ProfessorID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	}
	return helper.JsonDeleted(c, "Class schedule deleted", fiber.Map{"class_schedule_id": id})
}
