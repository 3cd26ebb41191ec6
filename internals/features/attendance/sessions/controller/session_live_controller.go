// file: internals/features/attendance/sessions/controller/session_live_controller.go
package controller

import (
	"bufio"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	sessionDTO "kampusku_backend/internals/features/attendance/sessions/dto"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	"kampusku_backend/internals/features/attendance/sessions/service"
	"kampusku_backend/internals/features/attendance/window"
	helper "kampusku_backend/internals/helpers"
)

// How often the SSE stream re-reads the session row to pick up a close or a
// minutes patch made from another connection.
const liveReloadInterval = 5 * time.Second

type SessionLiveController struct {
	DB *gorm.DB
}

func NewSessionLiveController(db *gorm.DB) *SessionLiveController {
	return &SessionLiveController{DB: db}
}

// ================= STATUS =================
// One-shot window snapshot for any authenticated user. Clients that don't hold
// an SSE connection poll this instead.
func (ctrl *SessionLiveController) Status(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	var sess sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&sess, "attendance_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}
	return helper.JsonOK(c, "ok", sessionDTO.ToAttendanceSessionResponse(&sess, time.Now().UTC()))
}

// ================= LIVE (SSE) =================
// Streams one snapshot per second while the session is active. The stream ends
// when the window calculator reports the session closed or the client goes
// away. Display only — the check-in endpoint never trusts these snapshots.
func (ctrl *SessionLiveController) Live(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	var sess sessionModel.AttendanceSessionModel
	if err := ctrl.DB.First(&sess, "attendance_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance session")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	db := ctrl.DB
	sessionID := sess.AttendanceSessionID
	desc := sess.Descriptor()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		snaps := make(chan window.Snapshot, 8)
		watcher := service.NewSessionWatcher(desc, func(s window.Snapshot) {
			select {
			case snaps <- s:
			default: // slow consumer, drop rather than block the ticker
			}
		})
		watcher.Start()
		defer watcher.Stop()

		reload := time.NewTicker(liveReloadInterval)
		defer reload.Stop()

		for {
			select {
			case snap := <-snaps:
				payload, err := sonic.Marshal(snap)
				if err != nil {
					return
				}
				if _, err := w.WriteString("data: "); err != nil {
					return
				}
				if _, err := w.Write(payload); err != nil {
					return
				}
				if _, err := w.WriteString("\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					// client disconnected
					return
				}
				if !snap.IsOpen {
					log.Printf("[LIVE] stream ended session=%s reason=%s", sessionID, snap.ClosedReason)
					return
				}
			case <-reload.C:
				var fresh sessionModel.AttendanceSessionModel
				if err := db.First(&fresh, "attendance_session_id = ?", sessionID).Error; err != nil {
					return
				}
				watcher.SetDescriptor(fresh.Descriptor())
			}
		}
	}))
	return nil
}
