// file: internals/features/academics/departments/controller/department_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentDTO "kampusku_backend/internals/features/academics/departments/dto"
	departmentModel "kampusku_backend/internals/features/academics/departments/model"
	helper "kampusku_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

// ================= CREATE =================
func (ctrl *DepartmentController) Create(c *fiber.Ctx) error {
	var req departmentDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := req.ToModel()
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Department code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.JsonCreated(c, "Department created", departmentDTO.ToDepartmentResponse(&row))
}

// ================= LIST =================
func (ctrl *DepartmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&departmentModel.DepartmentModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(department_name) LIKE ? OR LOWER(department_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count departments")
	}

	var rows []departmentModel.DepartmentModel
	if err := q.Order("department_code ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list departments")
	}

	out := make([]departmentDTO.DepartmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, departmentDTO.ToDepartmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ================= DETAIL =================
func (ctrl *DepartmentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	var row departmentModel.DepartmentModel
	if err := ctrl.DB.First(&row, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}
	return helper.JsonOK(c, "ok", departmentDTO.ToDepartmentResponse(&row))
}

// ================= UPDATE =================
func (ctrl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var req departmentDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row departmentModel.DepartmentModel
	if err := ctrl.DB.First(&row, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	req.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Department code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.JsonUpdated(c, "Department updated", departmentDTO.ToDepartmentResponse(&row))
}

// ================= DELETE (soft) =================
func (ctrl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	res := ctrl.DB.Delete(&departmentModel.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}
	return helper.JsonDeleted(c, "Department deleted", fiber.Map{"department_id": id})
}
