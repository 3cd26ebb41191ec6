// file: internals/features/attendance/sessions/dto/attendance_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/attendance/sessions/model"
)

/* ========================================================
   CHECK-IN REQUEST
   ======================================================== */

type CheckInRequest struct {
	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id" validate:"required"`
}

/* ========================================================
   RESPONSE
   ======================================================== */

type AttendanceRecordResponse struct {
	AttendanceRecordID          uuid.UUID          `json:"attendance_record_id"`
	AttendanceRecordSessionID   uuid.UUID          `json:"attendance_record_session_id"`
	AttendanceRecordStudentID   uuid.UUID          `json:"attendance_record_student_id"`
	AttendanceRecordStatus      model.RecordStatus `json:"attendance_record_status"`
	AttendanceRecordCheckedInAt time.Time          `json:"attendance_record_checked_in_at"`
	AttendanceRecordCreatedAt   time.Time          `json:"attendance_record_created_at"`
}

func ToAttendanceRecordResponse(m *model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:          m.AttendanceRecordID,
		AttendanceRecordSessionID:   m.AttendanceRecordSessionID,
		AttendanceRecordStudentID:   m.AttendanceRecordStudentID,
		AttendanceRecordStatus:      m.AttendanceRecordStatus,
		AttendanceRecordCheckedInAt: m.AttendanceRecordCheckedInAt,
		AttendanceRecordCreatedAt:   m.AttendanceRecordCreatedAt,
	}
}
