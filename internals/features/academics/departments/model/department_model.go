// file: internals/features/academics/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	// PK
	DepartmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`

	DepartmentCode string `gorm:"type:varchar(20);not null;uniqueIndex;column:department_code" json:"department_code"`
	DepartmentName string `gorm:"type:varchar(160);not null;column:department_name" json:"department_name"`

	// Audit
	DepartmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_updated_at" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
