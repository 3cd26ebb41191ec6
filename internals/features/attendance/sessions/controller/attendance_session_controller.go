// file: internals/features/attendance/sessions/controller/attendance_session_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	scheduleModel "kampusku_backend/internals/features/academics/class_schedules/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	sessionDTO "kampusku_backend/internals/features/attendance/sessions/dto"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

type AttendanceSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceSessionController(db *gorm.DB) *AttendanceSessionController {
	return &AttendanceSessionController{DB: db, Validate: validator.New()}
}

func (ctrl *AttendanceSessionController) resolveProfessor(c *fiber.Ctx) (*professorModel.ProfessorModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var prof professorModel.ProfessorModel
	if err := ctrl.DB.First(&prof, "professor_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusForbidden, "No professor profile for this account")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve professor profile")
	}
	return &prof, nil
}

// ================= OPEN =================
// Opens attendance for one of the professor's schedules. Window and duration
// default from the schedule; the schedule row is frozen into a JSON snapshot
// so later edits to the schedule don't rewrite history.
func (ctrl *AttendanceSessionController) Open(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}

	var req sessionDTO.OpenAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var sched scheduleModel.ClassScheduleModel
	if err := ctrl.DB.First(&sched,
		"class_schedule_id = ? AND class_schedule_professor_id = ?",
		req.AttendanceSessionScheduleID, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class schedule")
	}

	now := time.Now().UTC()
	snapshot := datatypes.JSONMap{
		"class_schedule_id":          sched.ClassScheduleID.String(),
		"class_schedule_course_code": sched.ClassScheduleCourseCode,
		"class_schedule_course_name": sched.ClassScheduleCourseName,
		"class_schedule_start_time":  sched.ClassScheduleStartTime.String(),
	}
	if sched.ClassScheduleRoom != nil {
		snapshot["class_schedule_room"] = *sched.ClassScheduleRoom
	}

	row := req.ToModel(prof.ProfessorID,
		sched.ClassScheduleStartTime,
		sched.ClassScheduleWindowMinutes,
		sched.ClassScheduleDurationMinutes,
		snapshot, now)

	// One live session per schedule per day.
	var existing int64
	if err := ctrl.DB.Model(&sessionModel.AttendanceSessionModel{}).
		Where("attendance_session_schedule_id = ? AND attendance_session_date = ? AND attendance_session_is_active = true",
			row.AttendanceSessionScheduleID, row.AttendanceSessionDate).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing sessions")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "An active session already exists for this schedule today")
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open attendance session")
	}

	log.Printf("[SESSION] opened session=%s schedule=%s window=%dm duration=%dm",
		row.AttendanceSessionID, row.AttendanceSessionScheduleID,
		row.AttendanceSessionWindowMinutes, row.AttendanceSessionDurationMinutes)
	return helper.JsonCreated(c, "Attendance session opened",
		sessionDTO.ToAttendanceSessionResponse(&row, now))
}

// ================= CLOSE =================
// Flips is_active and stamps closed_at. Attendance counts are rolled up here
// so list views don't have to aggregate records.
func (ctrl *AttendanceSessionController) Close(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var row sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&row,
		"attendance_session_id = ? AND attendance_session_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}
	if !row.AttendanceSessionIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Session is already closed")
	}

	now := time.Now().UTC()
	var present, late int64
	ctrl.DB.Model(&sessionModel.AttendanceRecordModel{}).
		Where("attendance_record_session_id = ? AND attendance_record_status = ?", id, sessionModel.RecordStatusPresent).
		Count(&present)
	ctrl.DB.Model(&sessionModel.AttendanceRecordModel{}).
		Where("attendance_record_session_id = ? AND attendance_record_status = ?", id, sessionModel.RecordStatusLate).
		Count(&late)

	p, l := int(present), int(late)
	row.AttendanceSessionIsActive = false
	row.AttendanceSessionClosedAt = &now
	row.AttendanceSessionPresentCount = &p
	row.AttendanceSessionLateCount = &l
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to close attendance session")
	}

	log.Printf("[SESSION] closed session=%s present=%d late=%d", row.AttendanceSessionID, p, l)
	return helper.JsonUpdated(c, "Attendance session closed",
		sessionDTO.ToAttendanceSessionResponse(&row, now))
}

// ================= UPDATE =================
// Patches window/duration minutes while the session is still active.
func (ctrl *AttendanceSessionController) Update(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var req sessionDTO.UpdateAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&row,
		"attendance_session_id = ? AND attendance_session_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}
	if !row.AttendanceSessionIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Cannot update a closed session")
	}

	req.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance session")
	}
	return helper.JsonUpdated(c, "Attendance session updated",
		sessionDTO.ToAttendanceSessionResponse(&row, time.Now().UTC()))
}

// ================= LIST =================
// Window snapshots are computed per row at one shared now.
func (ctrl *AttendanceSessionController) List(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&sessionModel.AttendanceSessionModel{}).
		Where("attendance_session_professor_id = ?", prof.ProfessorID)
	if schedStr := strings.TrimSpace(c.Query("schedule_id")); schedStr != "" {
		schedID, err := uuid.Parse(schedStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule_id filter")
		}
		q = q.Where("attendance_session_schedule_id = ?", schedID)
	}
	if c.Query("active") == "true" {
		q = q.Where("attendance_session_is_active = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance sessions")
	}

	var rows []sessionModel.AttendanceSessionModel
	if err := q.Order("attendance_session_date DESC, attendance_session_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attendance sessions")
	}

	now := time.Now().UTC()
	out := make([]sessionDTO.AttendanceSessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sessionDTO.ToAttendanceSessionResponse(&rows[i], now))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ================= DETAIL =================
func (ctrl *AttendanceSessionController) Detail(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	var row sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&row,
		"attendance_session_id = ? AND attendance_session_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}
	return helper.JsonOK(c, "ok", sessionDTO.ToAttendanceSessionResponse(&row, time.Now().UTC()))
}

// ================= RECORDS =================
// Attendance roll for one session, the professor's review view.
func (ctrl *AttendanceSessionController) Records(c *fiber.Ctx) error {
	prof, err := ctrl.resolveProfessor(c)
	if prof == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var sess sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&sess,
		"attendance_session_id = ? AND attendance_session_professor_id = ?", id, prof.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := ctrl.DB.Model(&sessionModel.AttendanceRecordModel{}).
		Where("attendance_record_session_id = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance records")
	}

	var rows []sessionModel.AttendanceRecordModel
	if err := q.Order("attendance_record_checked_in_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attendance records")
	}

	out := make([]sessionDTO.AttendanceRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sessionDTO.ToAttendanceRecordResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
