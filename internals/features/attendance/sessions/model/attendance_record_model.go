// file: internals/features/attendance/sessions/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type RecordStatus string

const (
	RecordStatusPresent RecordStatus = "present"
	RecordStatusLate    RecordStatus = "late"
)

/* =========================================
   Model: attendance_records
========================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	// One record per (session, student); duplicates rejected by the unique index.
	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_session_id;uniqueIndex:uq_attendance_record_session_student" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_student_id;uniqueIndex:uq_attendance_record_session_student" json:"attendance_record_student_id"`

	AttendanceRecordStatus      RecordStatus `gorm:"type:text;not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordCheckedInAt time.Time    `gorm:"type:timestamptz;not null;column:attendance_record_checked_in_at" json:"attendance_record_checked_in_at"`

	// Audit
	AttendanceRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
