// file: internals/features/academics/professors/model/professor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessorModel is the teaching profile attached to a user account with the
// professor role.
type ProfessorModel struct {
	// PK
	ProfessorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:professor_id" json:"professor_id"`

	// Relasi utama
	ProfessorUserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:professor_user_id" json:"professor_user_id"`
	ProfessorDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:professor_department_id" json:"professor_department_id"`

	ProfessorCode  string  `gorm:"type:varchar(30);not null;uniqueIndex;column:professor_code" json:"professor_code"`
	ProfessorTitle *string `gorm:"type:varchar(60);column:professor_title" json:"professor_title,omitempty"`

	// Audit
	ProfessorCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:professor_created_at" json:"professor_created_at"`
	ProfessorUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:professor_updated_at" json:"professor_updated_at"`
	ProfessorDeletedAt gorm.DeletedAt `gorm:"column:professor_deleted_at;index" json:"professor_deleted_at,omitempty"`
}

func (ProfessorModel) TableName() string { return "professors" }
