// file: internals/features/academics/professors/controller/professor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	departmentModel "kampusku_backend/internals/features/academics/departments/model"
	professorDTO "kampusku_backend/internals/features/academics/professors/dto"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	authModel "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"

	"kampusku_backend/internals/constants"
)

type ProfessorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db, Validate: validator.New()}
}

// ================= CREATE =================
// Provisions the user account (role professor) and the profile in one tx.
func (ctrl *ProfessorController) Create(c *fiber.Ctx) error {
	var req professorDTO.CreateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Department must exist
	var dept departmentModel.DepartmentModel
	if err := ctrl.DB.First(&dept, "department_id = ?", req.ProfessorDepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.ProfessorPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var prof professorModel.ProfessorModel
	var user authModel.UserModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user = authModel.UserModel{
			UserName:     req.ProfessorName,
			UserEmail:    req.ProfessorEmail,
			UserPassword: string(hashed),
			UserRole:     constants.RoleProfessor,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		prof = professorModel.ProfessorModel{
			ProfessorUserID:       user.UserID,
			ProfessorDepartmentID: req.ProfessorDepartmentID,
			ProfessorCode:         req.ProfessorCode,
			ProfessorTitle:        req.ProfessorTitle,
		}
		return tx.Create(&prof).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email or professor code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create professor")
	}

	return helper.JsonCreated(c, "Professor created",
		professorDTO.ToProfessorResponse(&prof, user.UserName, user.UserEmail))
}

// ================= LIST =================
func (ctrl *ProfessorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&professorModel.ProfessorModel{})
	if deptStr := strings.TrimSpace(c.Query("department_id")); deptStr != "" {
		deptID, err := uuid.Parse(deptStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id filter")
		}
		q = q.Where("professor_department_id = ?", deptID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count professors")
	}

	var rows []professorModel.ProfessorModel
	if err := q.Order("professor_code ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list professors")
	}

	// Hydrate account names in one query
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ProfessorUserID)
	}
	users := map[uuid.UUID]authModel.UserModel{}
	if len(ids) > 0 {
		var urows []authModel.UserModel
		if err := ctrl.DB.Where("user_id IN ?", ids).Find(&urows).Error; err == nil {
			for i := range urows {
				users[urows[i].UserID] = urows[i]
			}
		}
	}

	out := make([]professorDTO.ProfessorResponse, 0, len(rows))
	for i := range rows {
		u := users[rows[i].ProfessorUserID]
		out = append(out, professorDTO.ToProfessorResponse(&rows[i], u.UserName, u.UserEmail))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ================= DETAIL =================
func (ctrl *ProfessorController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid professor id")
	}
	var row professorModel.ProfessorModel
	if err := ctrl.DB.First(&row, "professor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professor")
	}
	var user authModel.UserModel
	_ = ctrl.DB.First(&user, "user_id = ?", row.ProfessorUserID).Error
	return helper.JsonOK(c, "ok", professorDTO.ToProfessorResponse(&row, user.UserName, user.UserEmail))
}

// ================= UPDATE =================
func (ctrl *ProfessorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid professor id")
	}

	var req professorDTO.UpdateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row professorModel.ProfessorModel
	if err := ctrl.DB.First(&row, "professor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professor")
	}

	if req.ProfessorDepartmentID != nil {
		var dept departmentModel.DepartmentModel
		if err := ctrl.DB.First(&dept, "department_id = ?", *req.ProfessorDepartmentID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
	}

	req.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Professor code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update professor")
	}

	var user authModel.UserModel
	_ = ctrl.DB.First(&user, "user_id = ?", row.ProfessorUserID).Error
	return helper.JsonUpdated(c, "Professor updated", professorDTO.ToProfessorResponse(&row, user.UserName, user.UserEmail))
}

// ================= DELETE (soft) =================
func (ctrl *ProfessorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid professor id")
	}
	res := ctrl.DB.Delete(&professorModel.ProfessorModel{}, "professor_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete professor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Professor not found")
	}
	return helper.JsonDeleted(c, "Professor deleted", fiber.Map{"professor_id": id})
}
