package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentService "coachdesk_backend/internals/features/finance/payments/service"
	dto "coachdesk_backend/internals/features/players/dto"
	model "coachdesk_backend/internals/features/players/model"
	service "coachdesk_backend/internals/features/players/service"
	helper "coachdesk_backend/internals/helpers"
)

type PlayerController struct {
	DB       *gorm.DB
	Packages *service.PackageService
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{DB: db, Packages: service.NewPackageService(db)}
}

/* ======================= CREATE ======================= */
// POST /api/u/players
func (h *PlayerController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	sessions, err := service.ResolveSessionCount(actorFromCtx(c), req.PlayerSessions)
	if err != nil {
		return err
	}

	m := req.ToModel(sessions)
	m.PlayerRemainingBalance = paymentService.RemainingBalance(
		m.PlayerTotalTrainingFee, m.PlayerDownpayment, 0)

	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromDBError(err, "player")
	}

	return helper.JsonCreated(c, "Player created", dto.FromModel(m))
}

/* ======================== LIST ======================== */
// GET /api/u/players
func (h *PlayerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.PlayerModel{})
	if branchID := c.Query("branch_id"); branchID != "" {
		id, err := uuid.Parse(branchID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid branch_id")
		}
		base = base.Where("player_branch_id = ?", id)
	}
	if pkg := c.Query("package_type"); pkg != "" {
		base = base.Where("player_package_type = ?", pkg)
	}
	if q := c.Query("q"); q != "" {
		base = base.Where("player_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "players")
	}

	var list []model.PlayerModel
	if err := base.
		Order("player_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "players")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/players/:id — detail plus the derived quota of the current cycle
func (h *PlayerController) GetByID(c *fiber.Ctx) error {
	row, err := h.findPlayer(c)
	if err != nil {
		return err
	}

	quota, err := h.Packages.CurrentQuota(c.Context(), row)
	if err != nil {
		return helper.FromDBError(err, "player")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"player": dto.FromModel(row),
		"quota":  quota,
	})
}

/* ======================== CYCLES ======================== */
// GET /api/u/players/:id/cycles — full reconstructed package-cycle history
func (h *PlayerController) Cycles(c *fiber.Ctx) error {
	row, err := h.findPlayer(c)
	if err != nil {
		return err
	}

	cycles, err := h.Packages.Cycles(c.Context(), row)
	if err != nil {
		return helper.FromDBError(err, "player")
	}

	return helper.JsonOK(c, "OK", cycles)
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/u/players/:id
func (h *PlayerController) Update(c *fiber.Ctx) error {
	row, err := h.findPlayer(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyTo(row)

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		// fee/downpayment edits shift the derived balance
		if req.TouchesFinancials() {
			return paymentService.RecomputeBalance(tx, row.PlayerID)
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(err, "player")
	}

	if req.TouchesFinancials() {
		if err := h.DB.First(row, "player_id = ?", row.PlayerID).Error; err != nil {
			return helper.FromDBError(err, "player")
		}
	}

	return helper.JsonUpdated(c, "Player updated", dto.FromModel(row))
}

/* ======================== DELETE (HARD) ======================== */
// DELETE /api/a/players/:id — attendance, payments, and package history go
// with the player via ON DELETE CASCADE
func (h *PlayerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid player ID")
	}

	res := h.DB.Where("player_id = ?", id).Delete(&model.PlayerModel{})
	if res.Error != nil {
		return helper.FromDBError(res.Error, "player")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Player not found")
	}

	return helper.JsonDeleted(c, "Player deleted", fiber.Map{"player_id": id})
}

/* ======================== INTERNAL ======================== */

func (h *PlayerController) findPlayer(c *fiber.Ctx) (*model.PlayerModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid player ID")
	}

	var row model.PlayerModel
	if err := h.DB.Where("player_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		return nil, helper.FromDBError(err, "player")
	}
	return &row, nil
}
