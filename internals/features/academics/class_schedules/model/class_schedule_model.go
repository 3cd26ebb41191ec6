// file: internals/features/academics/class_schedules/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbtime "kampusku_backend/internals/helpers/dbtime"
)

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_schedule_id" json:"class_schedule_id"`

	// Relasi utama
	ClassScheduleProfessorID  uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_professor_id" json:"class_schedule_professor_id"`
	ClassScheduleDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_department_id" json:"class_schedule_department_id"`

	ClassScheduleCourseCode string  `gorm:"type:varchar(20);not null;column:class_schedule_course_code" json:"class_schedule_course_code"`
	ClassScheduleCourseName string  `gorm:"type:varchar(160);not null;column:class_schedule_course_name" json:"class_schedule_course_name"`
	ClassScheduleRoom       *string `gorm:"type:varchar(60);column:class_schedule_room" json:"class_schedule_room,omitempty"`

	// Weekly pattern: ISO weekdays (1=Mon..7=Sun) + start time-of-day
	ClassScheduleMeetingDays pq.Int64Array `gorm:"type:int[];column:class_schedule_meeting_days" json:"class_schedule_meeting_days,omitempty"`
	ClassScheduleStartTime   dbtime.Tod    `gorm:"type:time;not null;column:class_schedule_start_time" json:"class_schedule_start_time"`

	// Defaults copied into a session when the professor opens one
	ClassScheduleWindowMinutes   int `gorm:"not null;default:15;column:class_schedule_window_minutes" json:"class_schedule_window_minutes"`
	ClassScheduleDurationMinutes int `gorm:"not null;default:60;column:class_schedule_duration_minutes" json:"class_schedule_duration_minutes"`

	// Audit
	ClassScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_schedule_created_at" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_schedule_updated_at" json:"class_schedule_updated_at"`
	ClassScheduleDeletedAt gorm.DeletedAt `gorm:"column:class_schedule_deleted_at;index" json:"class_schedule_deleted_at,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }
