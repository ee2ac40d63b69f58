package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifService "coachdesk_backend/internals/features/notifications/service"
	playerService "coachdesk_backend/internals/features/players/service"
	attendanceModel "coachdesk_backend/internals/features/schedule/attendance/model"
	dto "coachdesk_backend/internals/features/schedule/sessions/dto"
	model "coachdesk_backend/internals/features/schedule/sessions/model"
	helper "coachdesk_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Packages *playerService.PackageService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Packages: playerService.NewPackageService(db)}
}

/* ======================= CREATE ======================= */
// POST /api/u/sessions
func (h *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromDBError(err, "session")
	}

	return helper.JsonCreated(c, "Session created", dto.FromModel(m))
}

/* ======================== LIST ======================== */
// GET /api/u/sessions?from=&to=&branch_id=&coach_id=
func (h *SessionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.TrainingSessionModel{})
	if from := c.Query("from"); from != "" {
		base = base.Where("session_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		base = base.Where("session_date <= ?", to)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		base = base.Where("session_branch_id = ?", branchID)
	}
	if coachID := c.Query("coach_id"); coachID != "" {
		base = base.Where("session_coach_id = ?", coachID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "sessions")
	}

	var list []model.TrainingSessionModel
	if err := base.
		Order("session_date ASC, session_start_time ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "sessions")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/sessions/:id — includes the roster
func (h *SessionController) GetByID(c *fiber.Ctx) error {
	row, err := h.findSession(c)
	if err != nil {
		return err
	}

	var roster []attendanceModel.AttendanceRecordModel
	if err := h.DB.
		Where("attendance_session_id = ?", row.SessionID).
		Order("attendance_created_at ASC").
		Find(&roster).Error; err != nil {
		return helper.FromDBError(err, "attendance")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"session": dto.FromModel(row),
		"roster":  roster,
	})
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/u/sessions/:id
func (h *SessionController) Update(c *fiber.Ctx) error {
	row, err := h.findSession(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyTo(row)
	if err := h.DB.Save(row).Error; err != nil {
		return helper.FromDBError(err, "session")
	}

	return helper.JsonUpdated(c, "Session updated", dto.FromModel(row))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/u/sessions/:id
func (h *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")
	}

	res := h.DB.Where("session_id = ?", id).Delete(&model.TrainingSessionModel{})
	if res.Error != nil {
		return helper.FromDBError(res.Error, "session")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"session_id": id})
}

/* ======================== ROSTER ======================== */
// POST /api/u/sessions/:id/roster — enroll players; each new attendance row
// starts pending and is tagged with the player's current package cycle
func (h *SessionController) AddRoster(c *fiber.Ctx) error {
	row, err := h.findSession(c)
	if err != nil {
		return err
	}

	var req dto.AddRosterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var created []attendanceModel.AttendanceRecordModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for _, playerID := range req.PlayerIDs {
			cycle, err := h.Packages.CurrentCycleFor(tx, playerID)
			if err != nil {
				return err
			}

			rec := attendanceModel.AttendanceRecordModel{
				AttendanceSessionID:    row.SessionID,
				AttendancePlayerID:     playerID,
				AttendanceStatus:       playerService.StatusPending,
				AttendancePackageCycle: &cycle,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			created = append(created, rec)
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(err, "attendance")
	}

	if req.Notify {
		// fire-and-forget; failures are logged, never block the response
		go notifService.NotifySessionScheduled(h.DB, row.SessionID, req.PlayerIDs)
	}

	return helper.JsonCreated(c, "Players enrolled", created)
}

/* ======================== INTERNAL ======================== */

func (h *SessionController) findSession(c *fiber.Ctx) (*model.TrainingSessionModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")
	}

	var row model.TrainingSessionModel
	if err := h.DB.Where("session_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return nil, helper.FromDBError(err, "session")
	}
	return &row, nil
}
