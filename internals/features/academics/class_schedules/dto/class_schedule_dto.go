// file: internals/features/academics/class_schedules/dto/class_schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "kampusku_backend/internals/features/academics/class_schedules/model"
	dbtime "kampusku_backend/internals/helpers/dbtime"
)

/* ========================================================
   REQUESTS (CREATE / UPDATE)
   ======================================================== */

type CreateClassScheduleRequest struct {
	ClassScheduleDepartmentID uuid.UUID `json:"class_schedule_department_id" validate:"required"`
	ClassScheduleCourseCode   string    `json:"class_schedule_course_code" validate:"required,min=2,max=20"`
	ClassScheduleCourseName   string    `json:"class_schedule_course_name" validate:"required,min=2,max=160"`
	ClassScheduleRoom         *string   `json:"class_schedule_room" validate:"omitempty,max=60"`

	// ISO weekdays, 1=Mon..7=Sun
	ClassScheduleMeetingDays []int64    `json:"class_schedule_meeting_days" validate:"omitempty,dive,min=1,max=7"`
	ClassScheduleStartTime   dbtime.Tod `json:"class_schedule_start_time" validate:"required"`

	ClassScheduleWindowMinutes   *int `json:"class_schedule_window_minutes" validate:"omitempty,min=0"`
	ClassScheduleDurationMinutes *int `json:"class_schedule_duration_minutes" validate:"omitempty,min=0"`
}

func (r *CreateClassScheduleRequest) Normalize() {
	r.ClassScheduleCourseCode = strings.ToUpper(strings.TrimSpace(r.ClassScheduleCourseCode))
	r.ClassScheduleCourseName = strings.TrimSpace(r.ClassScheduleCourseName)
	if r.ClassScheduleRoom != nil {
		v := strings.TrimSpace(*r.ClassScheduleRoom)
		if v == "" {
			r.ClassScheduleRoom = nil
		} else {
			r.ClassScheduleRoom = &v
		}
	}
}

func (r *CreateClassScheduleRequest) ToModel(professorID uuid.UUID) model.ClassScheduleModel {
	windowMin := 15
	if r.ClassScheduleWindowMinutes != nil {
		windowMin = *r.ClassScheduleWindowMinutes
	}
	durationMin := 60
	if r.ClassScheduleDurationMinutes != nil {
		durationMin = *r.ClassScheduleDurationMinutes
	}
	return model.ClassScheduleModel{
		ClassScheduleProfessorID:     professorID,
		ClassScheduleDepartmentID:    r.ClassScheduleDepartmentID,
		ClassScheduleCourseCode:      r.ClassScheduleCourseCode,
		ClassScheduleCourseName:      r.ClassScheduleCourseName,
		ClassScheduleRoom:            r.ClassScheduleRoom,
		ClassScheduleMeetingDays:     pq.Int64Array(r.ClassScheduleMeetingDays),
		ClassScheduleStartTime:       r.ClassScheduleStartTime,
		ClassScheduleWindowMinutes:   windowMin,
		ClassScheduleDurationMinutes: durationMin,
	}
}

type UpdateClassScheduleRequest struct {
	ClassScheduleCourseCode *string `json:"class_schedule_course_code" validate:"omitempty,min=2,max=20"`
	ClassScheduleCourseName *string `json:"class_schedule_course_name" validate:"omitempty,min=2,max=160"`
	ClassScheduleRoom       *string `json:"class_schedule_room" validate:"omitempty,max=60"`

	ClassScheduleMeetingDays []int64     `json:"class_schedule_meeting_days" validate:"omitempty,dive,min=1,max=7"`
	ClassScheduleStartTime   *dbtime.Tod `json:"class_schedule_start_time" validate:"omitempty"`

	ClassScheduleWindowMinutes   *int `json:"class_schedule_window_minutes" validate:"omitempty,min=0"`
	ClassScheduleDurationMinutes *int `json:"class_schedule_duration_minutes" validate:"omitempty,min=0"`
}

func (r *UpdateClassScheduleRequest) Normalize() {
	if r.ClassScheduleCourseCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.ClassScheduleCourseCode))
		r.ClassScheduleCourseCode = &v
	}
	if r.ClassScheduleCourseName != nil {
		v := strings.TrimSpace(*r.ClassScheduleCourseName)
		r.ClassScheduleCourseName = &v
	}
	if r.ClassScheduleRoom != nil {
		v := strings.TrimSpace(*r.ClassScheduleRoom)
		r.ClassScheduleRoom = &v
	}
}

func (r *UpdateClassScheduleRequest) Apply(m *model.ClassScheduleModel) {
	if r.ClassScheduleCourseCode != nil {
		m.ClassScheduleCourseCode = *r.ClassScheduleCourseCode
	}
	if r.ClassScheduleCourseName != nil {
		m.ClassScheduleCourseName = *r.ClassScheduleCourseName
	}
	if r.ClassScheduleRoom != nil {
		m.ClassScheduleRoom = r.ClassScheduleRoom
	}
	if r.ClassScheduleMeetingDays != nil {
		m.ClassScheduleMeetingDays = pq.Int64Array(r.ClassScheduleMeetingDays)
	}
	if r.ClassScheduleStartTime != nil {
		m.ClassScheduleStartTime = *r.ClassScheduleStartTime
	}
	if r.ClassScheduleWindowMinutes != nil {
		m.ClassScheduleWindowMinutes = *r.ClassScheduleWindowMinutes
	}
	if r.ClassScheduleDurationMinutes != nil {
		m.ClassScheduleDurationMinutes = *r.ClassScheduleDurationMinutes
	}
}

/* ========================================================
   RESPONSE
   ======================================================== */

type ClassScheduleResponse struct {
	ClassScheduleID           uuid.UUID  `json:"class_schedule_id"`
	ClassScheduleProfessorID  uuid.UUID  `json:"class_schedule_professor_id"`
	ClassScheduleDepartmentID uuid.UUID  `json:"class_schedule_department_id"`
	ClassScheduleCourseCode   string     `json:"class_schedule_course_code"`
	ClassScheduleCourseName   string     `json:"class_schedule_course_name"`
	ClassScheduleRoom         *string    `json:"class_schedule_room,omitempty"`
	ClassScheduleMeetingDays  []int64    `json:"class_schedule_meeting_days,omitempty"`
	ClassScheduleStartTime    dbtime.Tod `json:"class_schedule_start_time"`

	ClassScheduleWindowMinutes   int `json:"class_schedule_window_minutes"`
	ClassScheduleDurationMinutes int `json:"class_schedule_duration_minutes"`

	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `json:"class_schedule_updated_at"`
}

func ToClassScheduleResponse(m *model.ClassScheduleModel) ClassScheduleResponse {
	return ClassScheduleResponse{
		ClassScheduleID:              m.ClassScheduleID,
		ClassScheduleProfessorID:     m.ClassScheduleProfessorID,
		ClassScheduleDepartmentID:    m.ClassScheduleDepartmentID,
		ClassScheduleCourseCode:      m.ClassScheduleCourseCode,
		ClassScheduleCourseName:      m.ClassScheduleCourseName,
		ClassScheduleRoom:            m.ClassScheduleRoom,
		ClassScheduleMeetingDays:     []int64(m.ClassScheduleMeetingDays),
		ClassScheduleStartTime:       m.ClassScheduleStartTime,
		ClassScheduleWindowMinutes:   m.ClassScheduleWindowMinutes,
		ClassScheduleDurationMinutes: m.ClassScheduleDurationMinutes,
		ClassScheduleCreatedAt:       m.ClassScheduleCreatedAt,
		ClassScheduleUpdatedAt:       m.ClassScheduleUpdatedAt,
	}
}
