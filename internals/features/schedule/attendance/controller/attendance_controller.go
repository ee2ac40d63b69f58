package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	playerService "coachdesk_backend/internals/features/players/service"
	dto "coachdesk_backend/internals/features/schedule/attendance/dto"
	model "coachdesk_backend/internals/features/schedule/attendance/model"
	helper "coachdesk_backend/internals/helpers"
)

// AttendanceController owns the attendance rows and keeps the player's
// quota mirror in lockstep: every status/duration change commits together
// with its quota delta in one transaction.
type AttendanceController struct {
	DB       *gorm.DB
	Packages *playerService.PackageService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Packages: playerService.NewPackageService(db)}
}

/* ======================= CREATE ======================= */
// POST /api/u/attendance — single enrollment (roster bulk-add lives on the
// session endpoint). Rows created as present debit the quota immediately.
func (h *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	status := playerService.StatusPending
	if req.AttendanceStatus != nil {
		status = *req.AttendanceStatus
	}

	rec := model.AttendanceRecordModel{
		AttendanceSessionID:       req.AttendanceSessionID,
		AttendancePlayerID:        req.AttendancePlayerID,
		AttendanceStatus:          status,
		AttendanceSessionDuration: req.AttendanceSessionDuration,
		AttendanceNotes:           req.AttendanceNotes,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		cycle, err := h.Packages.CurrentCycleFor(tx, req.AttendancePlayerID)
		if err != nil {
			return err
		}
		rec.AttendancePackageCycle = &cycle

		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		if status == playerService.StatusPresent {
			return h.Packages.AdjustForAttendanceChange(tx, rec.AttendancePlayerID,
				playerService.StatusPending, status, nil, rec.AttendanceSessionDuration)
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(err, "attendance")
	}

	return helper.JsonCreated(c, "Attendance recorded", dto.FromModel(&rec))
}

/* ======================== LIST ======================== */
// GET /api/u/attendance?session_id=&player_id=&status=
func (h *AttendanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.AttendanceRecordModel{})
	if sessionID := c.Query("session_id"); sessionID != "" {
		base = base.Where("attendance_session_id = ?", sessionID)
	}
	if playerID := c.Query("player_id"); playerID != "" {
		base = base.Where("attendance_player_id = ?", playerID)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("attendance_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "attendance")
	}

	var list []model.AttendanceRecordModel
	if err := base.
		Order("attendance_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "attendance")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/u/attendance/:id — the quota-critical path. The row write and
// the player's remaining-sessions delta commit in the same transaction.
func (h *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance ID")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var rec model.AttendanceRecordModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		// lock the row so concurrent edits cannot both read the old status
		// and double-apply the quota delta
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_id = ?", id).First(&rec).Error; err != nil {
			return err
		}

		oldStatus := rec.AttendanceStatus
		oldDur := rec.AttendanceSessionDuration

		if req.AttendanceStatus != nil {
			rec.AttendanceStatus = *req.AttendanceStatus
		}
		if req.AttendanceSessionDuration != nil {
			rec.AttendanceSessionDuration = req.AttendanceSessionDuration
		}
		if req.AttendanceNotes != nil {
			rec.AttendanceNotes = req.AttendanceNotes
		}

		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		return h.Packages.AdjustForAttendanceChange(tx, rec.AttendancePlayerID,
			oldStatus, rec.AttendanceStatus, oldDur, rec.AttendanceSessionDuration)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.FromDBError(err, "attendance")
	}

	return helper.JsonUpdated(c, "Attendance updated", dto.FromModel(&rec))
}

/* ======================== DELETE ======================== */
// DELETE /api/u/attendance/:id — deleting a present row credits the quota
// back, same transaction as the delete
func (h *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var rec model.AttendanceRecordModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_id = ?", id).First(&rec).Error; err != nil {
			return err
		}

		if err := tx.Delete(&rec).Error; err != nil {
			return err
		}

		if rec.AttendanceStatus == playerService.StatusPresent {
			return h.Packages.AdjustForAttendanceChange(tx, rec.AttendancePlayerID,
				playerService.StatusPresent, playerService.StatusPending,
				rec.AttendanceSessionDuration, nil)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.FromDBError(err, "attendance")
	}

	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"attendance_id": id})
}
