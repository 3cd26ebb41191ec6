// file: internals/features/academics/departments/dto/department_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/departments/model"
)

/* ========================================================
   REQUESTS (CREATE / UPDATE)
   ======================================================== */

type CreateDepartmentRequest struct {
	DepartmentCode string `json:"department_code" validate:"required,min=2,max=20"`
	DepartmentName string `json:"department_name" validate:"required,min=2,max=160"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.DepartmentCode = strings.ToUpper(strings.TrimSpace(r.DepartmentCode))
	r.DepartmentName = strings.TrimSpace(r.DepartmentName)
}

func (r *CreateDepartmentRequest) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentCode: r.DepartmentCode,
		DepartmentName: r.DepartmentName,
	}
}

// UPDATE — pointer fields; only non-nil are applied.
type UpdateDepartmentRequest struct {
	DepartmentCode *string `json:"department_code" validate:"omitempty,min=2,max=20"`
	DepartmentName *string `json:"department_name" validate:"omitempty,min=2,max=160"`
}

func (r *UpdateDepartmentRequest) Normalize() {
	if r.DepartmentCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.DepartmentCode))
		r.DepartmentCode = &v
	}
	if r.DepartmentName != nil {
		v := strings.TrimSpace(*r.DepartmentName)
		r.DepartmentName = &v
	}
}

func (r *UpdateDepartmentRequest) Apply(m *model.DepartmentModel) {
	if r.DepartmentCode != nil {
		m.DepartmentCode = *r.DepartmentCode
	}
	if r.DepartmentName != nil {
		m.DepartmentName = *r.DepartmentName
	}
}

/* ========================================================
   RESPONSE
   ======================================================== */

type DepartmentResponse struct {
	DepartmentID        uuid.UUID `json:"department_id"`
	DepartmentCode      string    `json:"department_code"`
	DepartmentName      string    `json:"department_name"`
	DepartmentCreatedAt time.Time `json:"department_created_at"`
	DepartmentUpdatedAt time.Time `json:"department_updated_at"`
}

func ToDepartmentResponse(m *model.DepartmentModel) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:        m.DepartmentID,
		DepartmentCode:      m.DepartmentCode,
		DepartmentName:      m.DepartmentName,
		DepartmentCreatedAt: m.DepartmentCreatedAt,
		DepartmentUpdatedAt: m.DepartmentUpdatedAt,
	}
}
