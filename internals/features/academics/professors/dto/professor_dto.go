// file: internals/features/academics/professors/dto/professor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/professors/model"
)

/* ========================================================
   REQUESTS (CREATE / UPDATE)
   ======================================================== */

// CREATE — provisions the user account and the teaching profile together.
type CreateProfessorRequest struct {
	ProfessorName         string    `json:"professor_name" validate:"required,min=2,max=120"`
	ProfessorEmail        string    `json:"professor_email" validate:"required,email,max=160"`
	ProfessorPassword     string    `json:"professor_password" validate:"required,min=8,max=72"`
	ProfessorDepartmentID uuid.UUID `json:"professor_department_id" validate:"required"`
	ProfessorCode         string    `json:"professor_code" validate:"required,min=2,max=30"`
	ProfessorTitle        *string   `json:"professor_title" validate:"omitempty,max=60"`
}

func (r *CreateProfessorRequest) Normalize() {
	r.ProfessorName = strings.TrimSpace(r.ProfessorName)
	r.ProfessorEmail = strings.ToLower(strings.TrimSpace(r.ProfessorEmail))
	r.ProfessorCode = strings.ToUpper(strings.TrimSpace(r.ProfessorCode))
	if r.ProfessorTitle != nil {
		v := strings.TrimSpace(*r.ProfessorTitle)
		if v == "" {
			r.ProfessorTitle = nil
		} else {
			r.ProfessorTitle = &v
		}
	}
}

type UpdateProfessorRequest struct {
	ProfessorDepartmentID *uuid.UUID `json:"professor_department_id" validate:"omitempty"`
	ProfessorCode         *string    `json:"professor_code" validate:"omitempty,min=2,max=30"`
	ProfessorTitle        *string    `json:"professor_title" validate:"omitempty,max=60"`
}

func (r *UpdateProfessorRequest) Normalize() {
	if r.ProfessorCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.ProfessorCode))
		r.ProfessorCode = &v
	}
	if r.ProfessorTitle != nil {
		v := strings.TrimSpace(*r.ProfessorTitle)
		r.ProfessorTitle = &v
	}
}

func (r *UpdateProfessorRequest) Apply(m *model.ProfessorModel) {
	if r.ProfessorDepartmentID != nil {
		m.ProfessorDepartmentID = *r.ProfessorDepartmentID
	}
	if r.ProfessorCode != nil {
		m.ProfessorCode = *r.ProfessorCode
	}
	if r.ProfessorTitle != nil {
		m.ProfessorTitle = r.ProfessorTitle
	}
}

/* ========================================================
   RESPONSE
   ======================================================== */

type ProfessorResponse struct {
	ProfessorID           uuid.UUID `json:"professor_id"`
	ProfessorUserID       uuid.UUID `json:"professor_user_id"`
	ProfessorDepartmentID uuid.UUID `json:"professor_department_id"`
	ProfessorCode         string    `json:"professor_code"`
	ProfessorTitle        *string   `json:"professor_title,omitempty"`
	ProfessorName         string    `json:"professor_name,omitempty"`
	ProfessorEmail        string    `json:"professor_email,omitempty"`
	ProfessorCreatedAt    time.Time `json:"professor_created_at"`
}

func ToProfessorResponse(m *model.ProfessorModel, name, email string) ProfessorResponse {
	return ProfessorResponse{
		ProfessorID:           m.ProfessorID,
		ProfessorUserID:       m.ProfessorUserID,
		ProfessorDepartmentID: m.ProfessorDepartmentID,
		ProfessorCode:         m.ProfessorCode,
		ProfessorTitle:        m.ProfessorTitle,
		ProfessorName:         name,
		ProfessorEmail:        email,
		ProfessorCreatedAt:    m.ProfessorCreatedAt,
	}
}
