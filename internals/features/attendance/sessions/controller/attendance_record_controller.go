// file: internals/features/attendance/sessions/controller/attendance_record_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionDTO "kampusku_backend/internals/features/attendance/sessions/dto"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	"kampusku_backend/internals/features/attendance/sessions/service"
	helper "kampusku_backend/internals/helpers"
)

type AttendanceRecordController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db, Validate: validator.New()}
}

// ================= CHECK-IN =================
// The server clock is read once, inside the transaction that persists the
// record, so the stored status matches the decision exactly. Whatever the
// client's countdown showed is irrelevant here.
func (ctrl *AttendanceRecordController) CheckIn(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req sessionDTO.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var record sessionModel.AttendanceRecordModel
	var decision service.Decision
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.AttendanceSessionModel
		if err := tx.First(&sess, "attendance_session_id = ?", req.AttendanceRecordSessionID).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		decision = service.Authorize(sess.Descriptor(), now)
		if !decision.Allowed {
			return errRejected
		}

		status := sessionModel.RecordStatusPresent
		if decision.IsLate {
			status = sessionModel.RecordStatusLate
		}
		record = sessionModel.AttendanceRecordModel{
			AttendanceRecordSessionID:   sess.AttendanceSessionID,
			AttendanceRecordStudentID:   studentID,
			AttendanceRecordStatus:      status,
			AttendanceRecordCheckedInAt: now,
		}
		return tx.Create(&record).Error
	})

	switch {
	case txErr == nil:
		log.Printf("[CHECKIN] accepted session=%s student=%s status=%s",
			record.AttendanceRecordSessionID, studentID, record.AttendanceRecordStatus)
		return helper.JsonCreated(c, "Checked in", sessionDTO.ToAttendanceRecordResponse(&record))
	case errors.Is(txErr, errRejected):
		log.Printf("[CHECKIN] rejected session=%s student=%s reason=%s",
			req.AttendanceRecordSessionID, studentID, decision.Reason)
		return helper.JsonError(c, fiber.StatusForbidden, decision.Message)
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
	case strings.Contains(txErr.Error(), "duplicate key"):
		return helper.JsonError(c, fiber.StatusConflict, "Already checked in")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}
}

// Sentinel for the rejected branch of the check-in transaction.
var errRejected = errors.New("check-in rejected")

// ================= MY RECORDS =================
func (ctrl *AttendanceRecordController) MyRecords(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&sessionModel.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ?", studentID)
	if sessStr := strings.TrimSpace(c.Query("session_id")); sessStr != "" {
		sessID, err := uuid.Parse(sessStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session_id filter")
		}
		q = q.Where("attendance_record_session_id = ?", sessID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance records")
	}

	var rows []sessionModel.AttendanceRecordModel
	if err := q.Order("attendance_record_checked_in_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attendance records")
	}

	out := make([]sessionDTO.AttendanceRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sessionDTO.ToAttendanceRecordResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
