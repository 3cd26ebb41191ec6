// file: internals/features/attendance/sessions/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/window"
	dbtime "kampusku_backend/internals/helpers/dbtime"
)

/* =========================================
   Model: attendance_sessions
========================================= */

type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	// Relasi utama
	AttendanceSessionScheduleID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_schedule_id" json:"attendance_session_schedule_id"`
	AttendanceSessionProfessorID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_professor_id" json:"attendance_session_professor_id"`

	// Occurrence (date + time-of-day; combined in UTC by the window package)
	AttendanceSessionDate      time.Time  `gorm:"type:date;not null;column:attendance_session_date" json:"attendance_session_date"`
	AttendanceSessionStartTime dbtime.Tod `gorm:"type:time;not null;column:attendance_session_start_time" json:"attendance_session_start_time"`

	// Lifecycle: the flag is owned by the professor endpoints; expiry past the
	// session duration is derived on read, never written back here.
	AttendanceSessionIsActive bool       `gorm:"not null;default:true;column:attendance_session_is_active" json:"attendance_session_is_active"`
	AttendanceSessionClosedAt *time.Time `gorm:"type:timestamptz;column:attendance_session_closed_at" json:"attendance_session_closed_at,omitempty"`

	// Window config (opaque non-negative minutes, defaults 15/60)
	AttendanceSessionWindowMinutes   int `gorm:"not null;default:15;column:attendance_session_window_minutes" json:"attendance_session_window_minutes"`
	AttendanceSessionDurationMinutes int `gorm:"not null;default:60;column:attendance_session_duration_minutes" json:"attendance_session_duration_minutes"`

	// Snapshot of the schedule at open time (raw JSONB)
	AttendanceSessionScheduleSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:attendance_session_schedule_snapshot" json:"attendance_session_schedule_snapshot,omitempty"`

	// Rekap
	AttendanceSessionPresentCount *int `gorm:"column:attendance_session_present_count" json:"attendance_session_present_count,omitempty"`
	AttendanceSessionLateCount    *int `gorm:"column:attendance_session_late_count" json:"attendance_session_late_count,omitempty"`

	// Audit
	AttendanceSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_session_updated_at" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

// Descriptor builds the immutable snapshot consumed by the window calculator.
// Both the live feed and the check-in gate go through this one conversion.
func (m *AttendanceSessionModel) Descriptor() window.Descriptor {
	return window.Descriptor{
		Date:            m.AttendanceSessionDate,
		StartTime:       m.AttendanceSessionStartTime,
		IsActive:        m.AttendanceSessionIsActive,
		WindowMinutes:   m.AttendanceSessionWindowMinutes,
		DurationMinutes: m.AttendanceSessionDurationMinutes,
	}
}

// Optional guard: keep snapshot non-NULL on save.
func (m *AttendanceSessionModel) BeforeSave(tx *gorm.DB) error {
	if m.AttendanceSessionScheduleSnapshot == nil {
		m.AttendanceSessionScheduleSnapshot = datatypes.JSONMap{}
	}
	return nil
}
