// file: internals/features/attendance/sessions/dto/attendance_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kampusku_backend/internals/features/attendance/window"
	model "kampusku_backend/internals/features/attendance/sessions/model"
	dbtime "kampusku_backend/internals/helpers/dbtime"
)

/* ========================================================
   1) REQUEST DTOs (OPEN / UPDATE / CLOSE)
   ======================================================== */

// OPEN — a professor starts taking attendance for one of their schedules.
type OpenAttendanceSessionRequest struct {
	AttendanceSessionScheduleID uuid.UUID `json:"attendance_session_schedule_id" validate:"required"`

	// Optional — defaults: today (UTC) and the schedule's start time.
	AttendanceSessionDate      *time.Time  `json:"attendance_session_date" validate:"omitempty"`
	AttendanceSessionStartTime *dbtime.Tod `json:"attendance_session_start_time" validate:"omitempty"`

	// Optional — defaults come from the schedule (15/60 when unset there too).
	AttendanceSessionWindowMinutes   *int `json:"attendance_session_window_minutes" validate:"omitempty,min=0"`
	AttendanceSessionDurationMinutes *int `json:"attendance_session_duration_minutes" validate:"omitempty,min=0"`
}

func (r *OpenAttendanceSessionRequest) Normalize() {
	if r.AttendanceSessionDate != nil {
		d := r.AttendanceSessionDate.UTC()
		dd := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		r.AttendanceSessionDate = &dd
	}
}

// ToModel fills defaults that the request left unset.
func (r *OpenAttendanceSessionRequest) ToModel(professorID uuid.UUID, defStart dbtime.Tod, defWindow, defDuration int, snapshot datatypes.JSONMap, now time.Time) model.AttendanceSessionModel {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if r.AttendanceSessionDate != nil {
		date = *r.AttendanceSessionDate
	}
	start := defStart
	if r.AttendanceSessionStartTime != nil {
		start = *r.AttendanceSessionStartTime
	}
	windowMin := defWindow
	if r.AttendanceSessionWindowMinutes != nil {
		windowMin = *r.AttendanceSessionWindowMinutes
	}
	durationMin := defDuration
	if r.AttendanceSessionDurationMinutes != nil {
		durationMin = *r.AttendanceSessionDurationMinutes
	}

	return model.AttendanceSessionModel{
		AttendanceSessionScheduleID:       r.AttendanceSessionScheduleID,
		AttendanceSessionProfessorID:      professorID,
		AttendanceSessionDate:             date,
		AttendanceSessionStartTime:        start,
		AttendanceSessionIsActive:         true,
		AttendanceSessionWindowMinutes:    windowMin,
		AttendanceSessionDurationMinutes:  durationMin,
		AttendanceSessionScheduleSnapshot: snapshot,
	}
}

// UPDATE — patch semantics; only non-nil fields are applied.
type UpdateAttendanceSessionRequest struct {
	AttendanceSessionWindowMinutes   *int `json:"attendance_session_window_minutes" validate:"omitempty,min=0"`
	AttendanceSessionDurationMinutes *int `json:"attendance_session_duration_minutes" validate:"omitempty,min=0"`
}

func (r *UpdateAttendanceSessionRequest) Apply(m *model.AttendanceSessionModel) {
	if r.AttendanceSessionWindowMinutes != nil {
		m.AttendanceSessionWindowMinutes = *r.AttendanceSessionWindowMinutes
	}
	if r.AttendanceSessionDurationMinutes != nil {
		m.AttendanceSessionDurationMinutes = *r.AttendanceSessionDurationMinutes
	}
}

/* ========================================================
   2) RESPONSE DTOs
   ======================================================== */

type AttendanceSessionResponse struct {
	AttendanceSessionID          uuid.UUID  `json:"attendance_session_id"`
	AttendanceSessionScheduleID  uuid.UUID  `json:"attendance_session_schedule_id"`
	AttendanceSessionProfessorID uuid.UUID  `json:"attendance_session_professor_id"`
	AttendanceSessionDate        time.Time  `json:"attendance_session_date"`
	AttendanceSessionStartTime   dbtime.Tod `json:"attendance_session_start_time"`
	AttendanceSessionIsActive    bool       `json:"attendance_session_is_active"`
	AttendanceSessionClosedAt    *time.Time `json:"attendance_session_closed_at,omitempty"`

	AttendanceSessionWindowMinutes   int `json:"attendance_session_window_minutes"`
	AttendanceSessionDurationMinutes int `json:"attendance_session_duration_minutes"`

	AttendanceSessionScheduleSnapshot datatypes.JSONMap `json:"attendance_session_schedule_snapshot,omitempty"`

	AttendanceSessionPresentCount *int `json:"attendance_session_present_count,omitempty"`
	AttendanceSessionLateCount    *int `json:"attendance_session_late_count,omitempty"`

	// Derived on read from the shared calculator; never stored.
	AttendanceSessionStatus string          `json:"attendance_session_status"`
	AttendanceSessionWindow window.Snapshot `json:"attendance_session_window"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time `json:"attendance_session_updated_at"`
}

// ToAttendanceSessionResponse evaluates the window at now and derives the
// display status. Auto-expiry shows up here as a read-time fact; nothing
// writes is_active=false for it.
func ToAttendanceSessionResponse(m *model.AttendanceSessionModel, now time.Time) AttendanceSessionResponse {
	snap := window.Evaluate(m.Descriptor(), now)

	status := "in_progress"
	switch {
	case snap.ClosedReason == window.ReasonSessionInactive:
		status = "ended"
	case snap.ClosedReason == window.ReasonSessionExpired:
		status = "expired"
	case snap.IsOpen:
		status = "open"
	}

	return AttendanceSessionResponse{
		AttendanceSessionID:               m.AttendanceSessionID,
		AttendanceSessionScheduleID:       m.AttendanceSessionScheduleID,
		AttendanceSessionProfessorID:      m.AttendanceSessionProfessorID,
		AttendanceSessionDate:             m.AttendanceSessionDate,
		AttendanceSessionStartTime:        m.AttendanceSessionStartTime,
		AttendanceSessionIsActive:         m.AttendanceSessionIsActive,
		AttendanceSessionClosedAt:         m.AttendanceSessionClosedAt,
		AttendanceSessionWindowMinutes:    m.AttendanceSessionWindowMinutes,
		AttendanceSessionDurationMinutes:  m.AttendanceSessionDurationMinutes,
		AttendanceSessionScheduleSnapshot: m.AttendanceSessionScheduleSnapshot,
		AttendanceSessionPresentCount:     m.AttendanceSessionPresentCount,
		AttendanceSessionLateCount:        m.AttendanceSessionLateCount,
		AttendanceSessionStatus:           status,
		AttendanceSessionWindow:           snap,
		AttendanceSessionCreatedAt:        m.AttendanceSessionCreatedAt,
		AttendanceSessionUpdatedAt:        m.AttendanceSessionUpdatedAt,
	}
}
